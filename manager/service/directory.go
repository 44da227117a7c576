package service

import (
	"context"
	"time"

	"github.com/Code-Hex/go-generics-cache"
	"github.com/accessdesk/api/manager/domain"
)

// requesterDirectory resolves user ids to emails, caching hits for ttl.
type requesterDirectory struct {
	repo  domain.Repository
	cache *cache.Cache[string, string]
	ttl   time.Duration
}

func newRequesterDirectory(repo domain.Repository, ttl time.Duration) *requesterDirectory {
	return &requesterDirectory{
		repo:  repo,
		cache: cache.New[string, string](),
		ttl:   ttl,
	}
}

func (d *requesterDirectory) emails(ctx context.Context, ids []string) (map[string]string, error) {
	result := make(map[string]string, len(ids))
	var missing []string
	seen := map[string]struct{}{}
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		if email, ok := d.cache.Get(id); ok {
			result[id] = email
			continue
		}
		missing = append(missing, id)
	}
	if len(missing) == 0 {
		return result, nil
	}

	opts := &domain.QueryUserOptions{IDs: missing}
	if err := d.repo.QueryUsers(ctx, opts); err != nil {
		return nil, err
	}
	for _, user := range opts.Result {
		result[user.ID] = user.Email
		d.cache.Set(user.ID, user.Email, cache.WithExpiration(d.ttl))
	}
	return result, nil
}

// attach fills RequesterEmail on every request.
func (d *requesterDirectory) attach(ctx context.Context, reqs ...*domain.Request) error {
	ids := make([]string, 0, len(reqs))
	for _, req := range reqs {
		ids = append(ids, req.RequesterID)
	}
	emails, err := d.emails(ctx, ids)
	if err != nil {
		return err
	}
	for _, req := range reqs {
		req.RequesterEmail = emails[req.RequesterID]
	}
	return nil
}

func (d *requesterDirectory) remember(user *domain.User) {
	if user == nil {
		return
	}
	d.cache.Set(user.ID, user.Email, cache.WithExpiration(d.ttl))
}
