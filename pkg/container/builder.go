package container

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
)

type ContainerType string

const (
	ContainerTypeMongoDB ContainerType = "mongodb"
)

type ContainerInfo struct {
	Name string
	Type ContainerType
}

// ContainerBuilder tracks the containers started for a test run so they can be pruned together.
type ContainerBuilder struct {
	pool       *dockertest.Pool
	mu         sync.Mutex
	containers map[string]ContainerInfo
}

// NewContainerBuilder connects to the docker daemon at endpoint, or the environment default when empty.
func NewContainerBuilder(endpoint string) (*ContainerBuilder, error) {
	pool, err := dockertest.NewPool(endpoint)
	if err != nil {
		return nil, fmt.Errorf("connect docker, err: %w", err)
	}
	pool.MaxWait = 60 * time.Second
	return &ContainerBuilder{
		pool:       pool,
		containers: map[string]ContainerInfo{},
	}, nil
}

func (b *ContainerBuilder) Ping() error {
	return b.pool.Client.Ping()
}

func (b *ContainerBuilder) FindContainer(name string) (*docker.APIContainers, error) {
	list, err := b.pool.Client.ListContainers(docker.ListContainersOptions{
		All:     true,
		Filters: map[string][]string{"name": {name}},
	})
	if err != nil {
		return nil, fmt.Errorf("list containers, err: %w", err)
	}
	for i := range list {
		for _, n := range list[i].Names {
			if n == "/"+name || n == name {
				return &list[i], nil
			}
		}
	}
	return nil, nil
}

func (b *ContainerBuilder) AddContainer(id string, info ContainerInfo) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.containers[id] = info
}

func (b *ContainerBuilder) RunWithOptions(opts *dockertest.RunOptions) (*dockertest.Resource, error) {
	return b.pool.RunWithOptions(opts, func(hc *docker.HostConfig) {
		hc.AutoRemove = true
		hc.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
}

func (b *ContainerBuilder) Retry(op func() error) error {
	return b.pool.Retry(op)
}

// PruneAll force removes every container registered with AddContainer.
func (b *ContainerBuilder) PruneAll() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	var errs []error
	for id, info := range b.containers {
		err := b.pool.Client.RemoveContainer(docker.RemoveContainerOptions{
			ID:            id,
			Force:         true,
			RemoveVolumes: true,
		})
		var noSuch *docker.NoSuchContainer
		if err != nil && !errors.As(err, &noSuch) {
			errs = append(errs, fmt.Errorf("remove container %s, err: %w", info.Name, err))
			continue
		}
		delete(b.containers, id)
	}
	return errors.Join(errs...)
}
