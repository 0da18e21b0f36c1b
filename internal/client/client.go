package client

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"github.com/cenkalti/backoff/v4"
	"github.com/limbo/tenminute/internal/progress"
	"github.com/limbo/tenminute/internal/service"
	"github.com/limbo/tenminute/pkg/entity"
	"github.com/limbo/tenminute/pkg/httputil"
)

const (
	DefaultRetryInterval = 300 * time.Millisecond
	DefaultMaxRetries    = 3
)

// APIError is a non-2xx answer from the server.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Message)
}

func IsStatus(err error, code int) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == code
}

// Client talks to the journaling API. Reads go through its Cache and are
// retried; writes are sent once and invalidate the affected queries.
type Client struct {
	baseURL       string
	httpClient    *http.Client
	cache         *Cache
	retryInterval time.Duration
	maxRetries    uint64
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

func WithRetry(interval time.Duration, maxRetries uint64) Option {
	return func(c *Client) {
		c.retryInterval = interval
		c.maxRetries = maxRetries
	}
}

func WithCache(cache *Cache) Option {
	return func(c *Client) {
		c.cache = cache
	}
}

func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:       strings.TrimRight(baseURL, "/"),
		httpClient:    &http.Client{Timeout: 15 * time.Second},
		cache:         NewCache(),
		retryInterval: DefaultRetryInterval,
		maxRetries:    DefaultMaxRetries,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) Cache() *Cache {
	return c.cache
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	data, err := c.send(ctx, method, path, query, body)
	if err != nil || out == nil {
		return err
	}
	if err := sonic.ConfigDefault.Unmarshal(data, out); err != nil {
		return errors.New("decoding response error: " + err.Error())
	}
	return nil
}

// send returns the body of a 2xx answer.
func (c *Client) send(ctx context.Context, method, path string, query url.Values, body any) ([]byte, error) {
	var reader io.Reader
	if body != nil {
		b, err := sonic.ConfigDefault.Marshal(body)
		if err != nil {
			return nil, errors.New("encoding request error: " + err.Error())
		}
		reader = bytes.NewReader(b)
	}
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return nil, errors.New("building request error: " + err.Error())
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.New("reading response error: " + err.Error())
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{StatusCode: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
		var errResp httputil.ErrorResponse
		if sonic.ConfigDefault.Unmarshal(data, &errResp) == nil && errResp.Message != "" {
			apiErr.Message = errResp.Message
		}
		return nil, apiErr
	}
	return data, nil
}

// retry runs op at a fixed interval until it succeeds. 4xx answers are
// returned at once.
func (c *Client) retry(ctx context.Context, op func() error) error {
	policy := backoff.WithContext(backoff.WithMaxRetries(backoff.NewConstantBackOff(c.retryInterval), c.maxRetries), ctx)
	return backoff.Retry(func() error {
		err := op()
		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.StatusCode < http.StatusInternalServerError {
			return backoff.Permanent(err)
		}
		return err
	}, policy)
}

// read performs a GET, retrying transport failures, 5xx answers and
// undecodable bodies. Every attempt decodes into a fresh T, so a failed
// attempt leaves nothing behind in the result.
func read[T any](ctx context.Context, c *Client, path string, query url.Values) (T, error) {
	var result T
	err := c.retry(ctx, func() error {
		data, err := c.send(ctx, http.MethodGet, path, query, nil)
		if err != nil {
			return err
		}
		var out T
		if err := sonic.ConfigDefault.Unmarshal(data, &out); err != nil {
			return errors.New("decoding response error: " + err.Error())
		}
		result = out
		return nil
	})
	return result, err
}

func cachedRead[T any](ctx context.Context, c *Client, parts []string, path string, query url.Values) (T, error) {
	data, err := c.cache.Fetch(ctx, parts, func(ctx context.Context) (any, error) {
		out, err := read[T](ctx, c, path, query)
		if err != nil {
			return nil, err
		}
		return out, nil
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return data.(T), nil
}

func (c *Client) write(ctx context.Context, method, path string, body, out any, invalidate ...[]string) error {
	if err := c.do(ctx, method, path, nil, body, out); err != nil {
		return err
	}
	for _, prefix := range invalidate {
		c.cache.Invalidate(prefix...)
	}
	return nil
}

func (c *Client) Health(ctx context.Context) error {
	return c.retry(ctx, func() error {
		_, err := c.send(ctx, http.MethodGet, "/health", nil, nil)
		return err
	})
}

// Tasks

var taskQueries = [][]string{{"/api/tasks"}, {"/api/tasks-all"}, {"/api/daily-week"}}

func (c *Client) ListTasks(ctx context.Context, weekStart string) ([]*entity.Task, error) {
	var query url.Values
	parts := []string{"/api/tasks"}
	if weekStart != "" {
		query = url.Values{"weekStart": {weekStart}}
		parts = append(parts, weekStart)
	}
	return cachedRead[[]*entity.Task](ctx, c, parts, "/api/tasks", query)
}

func (c *Client) ListAllTasks(ctx context.Context) ([]*entity.Task, error) {
	return cachedRead[[]*entity.Task](ctx, c, []string{"/api/tasks-all"}, "/api/tasks-all", nil)
}

func (c *Client) CreateTask(ctx context.Context, req *service.CreateTaskRequest) (*entity.Task, error) {
	var task entity.Task
	if err := c.write(ctx, http.MethodPost, "/api/tasks", req, &task, taskQueries...); err != nil {
		return nil, err
	}
	return &task, nil
}

func (c *Client) UpdateTask(ctx context.Context, id string, req *service.UpdateTaskRequest) (*entity.Task, error) {
	var task entity.Task
	if err := c.write(ctx, http.MethodPut, "/api/tasks/"+url.PathEscape(id), req, &task, taskQueries...); err != nil {
		return nil, err
	}
	return &task, nil
}

func (c *Client) CompleteTask(ctx context.Context, id string, completed bool) (*entity.Task, error) {
	var task entity.Task
	body := service.SetCompletedRequest{Completed: &completed}
	if err := c.write(ctx, http.MethodPatch, "/api/tasks/"+url.PathEscape(id)+"/complete", &body, &task, taskQueries...); err != nil {
		return nil, err
	}
	return &task, nil
}

func (c *Client) DeleteTask(ctx context.Context, id string) error {
	return c.write(ctx, http.MethodDelete, "/api/tasks/"+url.PathEscape(id), nil, nil, taskQueries...)
}

// Daily entries

func dailyQueries(date string) [][]string {
	return [][]string{{"/api/daily", date}, {"/api/daily-all"}, {"/api/daily-week"}}
}

func (c *Client) ListAllDailyEntries(ctx context.Context) ([]*entity.DailyEntry, error) {
	return cachedRead[[]*entity.DailyEntry](ctx, c, []string{"/api/daily-all"}, "/api/daily-all", nil)
}

// DailyEntry returns nil without error when date has no entry.
func (c *Client) DailyEntry(ctx context.Context, date string) (*entity.DailyEntry, error) {
	return cachedRead[*entity.DailyEntry](ctx, c, []string{"/api/daily", date}, "/api/daily/"+url.PathEscape(date), nil)
}

func (c *Client) WeekDailyEntries(ctx context.Context, weekStart, weekEnd string) ([]*entity.DailyEntry, error) {
	return cachedRead[[]*entity.DailyEntry](ctx, c, []string{"/api/daily-week", weekStart, weekEnd},
		"/api/daily-week/"+url.PathEscape(weekStart)+"/"+url.PathEscape(weekEnd), nil)
}

func (c *Client) CreateDailyEntry(ctx context.Context, req *service.CreateDailyEntryRequest) (*entity.DailyEntry, error) {
	var entry entity.DailyEntry
	if err := c.write(ctx, http.MethodPost, "/api/daily", req, &entry, dailyQueries(req.Date)...); err != nil {
		return nil, err
	}
	return &entry, nil
}

func (c *Client) UpdateDailyEntry(ctx context.Context, id string, req *service.UpdateDailyEntryRequest) (*entity.DailyEntry, error) {
	var entry entity.DailyEntry
	if err := c.do(ctx, http.MethodPut, "/api/daily/"+url.PathEscape(id), nil, req, &entry); err != nil {
		return nil, err
	}
	// the date may have moved, so the whole /api/daily family goes
	for _, prefix := range [][]string{{"/api/daily"}, {"/api/daily-all"}, {"/api/daily-week"}} {
		c.cache.Invalidate(prefix...)
	}
	return &entry, nil
}

func (c *Client) DeleteDailyEntry(ctx context.Context, id string) error {
	return c.write(ctx, http.MethodDelete, "/api/daily-entries/"+url.PathEscape(id), nil, nil,
		[]string{"/api/daily"}, []string{"/api/daily-all"}, []string{"/api/daily-week"})
}

// Reflections

var reflectionQueries = [][]string{{"/api/reflections"}, {"/api/reflections-all"}}

// ListReflections lists the reflections of date, or all of them when date is empty.
func (c *Client) ListReflections(ctx context.Context, date string) ([]*entity.Reflection, error) {
	if date == "" {
		return cachedRead[[]*entity.Reflection](ctx, c, []string{"/api/reflections"}, "/api/reflections", nil)
	}
	return cachedRead[[]*entity.Reflection](ctx, c, []string{"/api/reflections", date}, "/api/reflections/"+url.PathEscape(date), nil)
}

func (c *Client) ListAllReflections(ctx context.Context) ([]*entity.Reflection, error) {
	return cachedRead[[]*entity.Reflection](ctx, c, []string{"/api/reflections-all"}, "/api/reflections-all", nil)
}

func (c *Client) ReflectionPrompts(ctx context.Context) ([]service.Prompt, error) {
	return cachedRead[[]service.Prompt](ctx, c, []string{"/api/reflection-prompts"}, "/api/reflection-prompts", nil)
}

func (c *Client) CreateReflection(ctx context.Context, req *service.CreateReflectionRequest) (*entity.Reflection, error) {
	var reflection entity.Reflection
	if err := c.write(ctx, http.MethodPost, "/api/reflections", req, &reflection, reflectionQueries...); err != nil {
		return nil, err
	}
	return &reflection, nil
}

func (c *Client) UpdateReflection(ctx context.Context, id string, req *service.UpdateReflectionRequest) (*entity.Reflection, error) {
	var reflection entity.Reflection
	if err := c.write(ctx, http.MethodPut, "/api/reflections/"+url.PathEscape(id), req, &reflection, reflectionQueries...); err != nil {
		return nil, err
	}
	return &reflection, nil
}

func (c *Client) DeleteReflection(ctx context.Context, id string) error {
	return c.write(ctx, http.MethodDelete, "/api/reflections/"+url.PathEscape(id), nil, nil, reflectionQueries...)
}

// Weekly reviews

var reviewQueries = [][]string{{"/api/weekly-review"}, {"/api/weekly-reviews-all"}}

// WeeklyReview returns nil without error when the week has no review.
func (c *Client) WeeklyReview(ctx context.Context, weekStart string) (*entity.WeeklyReview, error) {
	return cachedRead[*entity.WeeklyReview](ctx, c, []string{"/api/weekly-review", weekStart}, "/api/weekly-review/"+url.PathEscape(weekStart), nil)
}

func (c *Client) ListAllWeeklyReviews(ctx context.Context) ([]*entity.WeeklyReview, error) {
	return cachedRead[[]*entity.WeeklyReview](ctx, c, []string{"/api/weekly-reviews-all"}, "/api/weekly-reviews-all", nil)
}

func (c *Client) CreateWeeklyReview(ctx context.Context, req *service.CreateWeeklyReviewRequest) (*entity.WeeklyReview, error) {
	var review entity.WeeklyReview
	if err := c.write(ctx, http.MethodPost, "/api/weekly-review", req, &review, reviewQueries...); err != nil {
		return nil, err
	}
	return &review, nil
}

func (c *Client) UpdateWeeklyReview(ctx context.Context, id string, req *service.UpdateWeeklyReviewRequest) (*entity.WeeklyReview, error) {
	var review entity.WeeklyReview
	if err := c.write(ctx, http.MethodPut, "/api/weekly-review/"+url.PathEscape(id), req, &review, reviewQueries...); err != nil {
		return nil, err
	}
	return &review, nil
}

func (c *Client) DeleteWeeklyReview(ctx context.Context, id string) error {
	return c.write(ctx, http.MethodDelete, "/api/weekly-review/"+url.PathEscape(id), nil, nil, reviewQueries...)
}

// Insights are computed from live data and never cached.

func (c *Client) Streak(ctx context.Context, today string) (*service.StreakInsight, error) {
	var query url.Values
	if today != "" {
		query = url.Values{"today": {today}}
	}
	streak, err := read[service.StreakInsight](ctx, c, "/api/insights/streak", query)
	if err != nil {
		return nil, err
	}
	return &streak, nil
}

func (c *Client) WeekStats(ctx context.Context, weekStart, weekEnd string) (*progress.Stats, error) {
	path := "/api/insights/week/" + url.PathEscape(weekStart) + "/" + url.PathEscape(weekEnd)
	stats, err := read[progress.Stats](ctx, c, path, nil)
	if err != nil {
		return nil, err
	}
	return &stats, nil
}

// Suggestion asks for a ten-minute activity. Empty weekStart means the
// server's current week, energy 0 means unset.
func (c *Client) Suggestion(ctx context.Context, weekStart string, energy int) (*service.Suggestion, error) {
	query := url.Values{}
	if weekStart != "" {
		query.Set("weekStart", weekStart)
	}
	if energy != 0 {
		query.Set("energy", strconv.Itoa(energy))
	}
	suggestion, err := read[service.Suggestion](ctx, c, "/api/insights/suggestion", query)
	if err != nil {
		return nil, err
	}
	return &suggestion, nil
}
