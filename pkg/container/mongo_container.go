package container

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"go.mongodb.org/mongo-driver/v2/bson"
	mongo "go.mongodb.org/mongo-driver/v2/mongo"
	mongooption "go.mongodb.org/mongo-driver/v2/mongo/options"
)

type MongoContainerConnection struct {
	Host       string
	Port       string
	Database   string
	ReplicaSet string
}

const (
	mongoDBPort       = 27017
	defaultReplicaSet = "rs0"
)

// RunMongoContainer runs a single node MongoDB replica set so multi-document
// transactions are available, and returns the connection details.
func RunMongoContainer(builder *ContainerBuilder, name string, options MongoContainerConnection) (MongoContainerConnection, error) {
	replicaSet := options.ReplicaSet
	if replicaSet == "" {
		replicaSet = defaultReplicaSet
	}
	runOptions := dockertest.RunOptions{
		Name:       name,
		Repository: "mongo",
		Tag:        "8.2.2",
		Cmd:        []string{"--replSet", replicaSet, "--bind_ip_all"},
	}
	if options.Port != "" {
		runOptions.PortBindings = map[docker.Port][]docker.PortBinding{
			docker.Port(strconv.Itoa(mongoDBPort) + "/tcp"): {{HostIP: "127.0.0.1", HostPort: options.Port}},
		}
	}

	container, err := builder.FindContainer(name)
	if err != nil {
		return MongoContainerConnection{}, err
	}
	if container != nil && container.State == "running" {
		publicPort := int64(0)
		host := ""
		for _, bind := range container.Ports {
			if bind.PrivatePort == mongoDBPort {
				host = bind.IP
				publicPort = bind.PublicPort
				break
			}
		}
		if publicPort == 0 {
			return MongoContainerConnection{}, fmt.Errorf("failed to find public port for mongo container (%s)", name)
		}

		builder.AddContainer(container.ID, ContainerInfo{
			Name: name,
			Type: ContainerTypeMongoDB,
		})
		return MongoContainerConnection{
			Host:       host,
			Port:       strconv.FormatInt(publicPort, 10),
			Database:   options.Database,
			ReplicaSet: replicaSet,
		}, nil
	}

	resource, err := builder.RunWithOptions(&runOptions)
	if err != nil {
		return MongoContainerConnection{}, err
	}

	builder.AddContainer(resource.Container.ID, ContainerInfo{
		Name: name,
		Type: ContainerTypeMongoDB,
	})
	host := resource.GetBoundIP(strconv.Itoa(mongoDBPort) + "/tcp")
	mongoPort := resource.GetPort(strconv.Itoa(mongoDBPort) + "/tcp")
	uri := fmt.Sprintf("mongodb://%s:%s/?directConnection=true", host, mongoPort)

	err = builder.Retry(func() error {
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		return initiateReplicaSet(ctx, uri, replicaSet)
	})
	if err != nil {
		return MongoContainerConnection{}, fmt.Errorf("initiate replica set, err: %w", err)
	}

	return MongoContainerConnection{
		Host:       host,
		Port:       mongoPort,
		Database:   options.Database,
		ReplicaSet: replicaSet,
	}, nil
}

func initiateReplicaSet(ctx context.Context, uri, replicaSet string) error {
	client, err := mongo.Connect(mongooption.Client().ApplyURI(uri))
	if err != nil {
		return err
	}
	defer client.Disconnect(ctx)

	admin := client.Database("admin")
	var hello bson.M
	if err := admin.RunCommand(ctx, bson.D{{Key: "hello", Value: 1}}).Decode(&hello); err != nil {
		return err
	}
	if primary, _ := hello["isWritablePrimary"].(bool); primary {
		return nil
	}
	if _, ok := hello["setName"]; !ok {
		cmd := bson.D{{Key: "replSetInitiate", Value: bson.M{
			"_id":     replicaSet,
			"members": bson.A{bson.M{"_id": 0, "host": "localhost:" + strconv.Itoa(mongoDBPort)}},
		}}}
		if err := admin.RunCommand(ctx, cmd).Err(); err != nil {
			return err
		}
	}
	return fmt.Errorf("replica set %s has no primary yet", replicaSet)
}
