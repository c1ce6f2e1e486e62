// Package source fetches record sets from the upstream data API. It is the
// only part of the dashboard that touches the network: everything downstream
// works on the in-memory record set it returns.
package source

import (
	"context"
	"errors"
	"io/ioutil"
	"net/http"
	"net/url"
	"strconv"
	"sync"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/seqdash/seqdash/pkg/config"
	"github.com/seqdash/seqdash/pkg/helpers"
	"github.com/seqdash/seqdash/pkg/log"
	"github.com/seqdash/seqdash/pkg/table"
	"go.uber.org/zap"
)

// ErrStale marks a fetch that resolved after a newer fetch began for the same
// view; callers drop the result instead of rendering it.
var ErrStale = errors.New("stale response discarded")

var ErrBadStatus = errors.New("source returned a bad status")

// Query describes one record-set request to the upstream API.
type Query struct {
	Path     string // e.g. /billing/cost-by-project
	Start    string // Inclusive date, YYYY-MM-DD
	End      string // Exclusive date, YYYY-MM-DD
	GroupBy  string
	Selected map[string][]string // Upstream-side filter values
}

func (q Query) values() url.Values {

	vals := url.Values{}

	if q.Start != "" {
		vals.Set("start", q.Start)
	}
	if q.End != "" {
		vals.Set("end", q.End)
	}
	if q.GroupBy != "" {
		vals.Set("group_by", q.GroupBy)
	}
	for k, vv := range q.Selected {
		for _, v := range vv {
			vals.Add(k, v)
		}
	}

	return vals
}

func (q Query) cacheKey() string {
	return q.Path + "?" + q.values().Encode()
}

type Client struct {
	base    string
	http    *http.Client
	cache   *cache.Cache
	genLock sync.Mutex
	gens    map[string]uint64 // Latest fetch generation per path
}

func NewClient() *Client {

	return &Client{
		base:  config.C.SourceURL,
		http:  &http.Client{Timeout: config.C.SourceTimeout},
		cache: cache.New(config.C.SourceCacheTTL, 10*time.Minute),
		gens:  map[string]uint64{},
	}
}

// Fetch gets the record set for a query, serving briefly-cached results when
// the same query repeats (sorting or exporting a page should not refetch).
// A fetch that finishes after a newer Fetch began for the same path returns
// ErrStale.
func (c *Client) Fetch(ctx context.Context, query Query) ([]table.Record, error) {

	key := query.cacheKey()

	if val, ok := c.cache.Get(key); ok {
		if records, ok := val.([]table.Record); ok {
			return records, nil
		}
	}

	gen := c.nextGeneration(query.Path)

	records, err := c.fetch(ctx, query)
	if err != nil {
		return nil, err
	}

	if c.currentGeneration(query.Path) != gen {
		return nil, ErrStale
	}

	c.cache.SetDefault(key, records)

	return records, nil
}

func (c *Client) fetch(ctx context.Context, query Query) ([]table.Record, error) {

	u := c.base + query.Path + "?" + query.values().Encode()

	start := time.Now()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() {
		err := resp.Body.Close()
		if err != nil {
			log.ErrS(err)
		}
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.New(ErrBadStatus.Error() + ": " + strconv.Itoa(resp.StatusCode))
	}

	body, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var records []table.Record
	err = helpers.Unmarshal(body, &records)
	if err != nil {
		return nil, err
	}

	log.Info("source fetch",
		zap.String("path", query.Path),
		zap.Int("records", len(records)),
		zap.Duration("took", time.Since(start)),
	)

	return records, nil
}

func (c *Client) nextGeneration(path string) uint64 {

	c.genLock.Lock()
	defer c.genLock.Unlock()

	c.gens[path]++
	return c.gens[path]
}

func (c *Client) currentGeneration(path string) uint64 {

	c.genLock.Lock()
	defer c.genLock.Unlock()

	return c.gens[path]
}

// Flush drops all cached record sets.
func (c *Client) Flush() {
	c.cache.Flush()
}
