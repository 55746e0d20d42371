// Package mongo reads project tasks from the dashboard's MongoDB collection.
//
// Each task is one document:
//
//	{
//	  "_id": ObjectId("65f1c0a9e4b0d2a1c3f4e5d6"),
//	  "projectId": "website",
//	  "title": "Build pages",
//	  "status": "In Progress",
//	  "priority": "High",
//	  "dependencies": ["65f1c0a9e4b0d2a1c3f4e5d5"],
//	  "assignee": "kim",
//	  "dueDate": "2026-11-01"
//	}
//
// Ids may be ObjectIds or strings; ObjectIds are converted to their hex
// form so dependency lists written either way resolve.
package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/tam-pham-duc/ProManage-AI-sub001/pkg/core/task"
	"github.com/tam-pham-duc/ProManage-AI-sub001/pkg/errors"
	"github.com/tam-pham-duc/ProManage-AI-sub001/pkg/retry"
)

// Config locates the tasks collection.
type Config struct {
	URI        string
	Database   string
	Collection string
	// Timeout bounds server selection and each query.
	Timeout time.Duration
}

// Source is a store.Source backed by MongoDB.
type Source struct {
	client  *mongo.Client
	coll    *mongo.Collection
	timeout time.Duration
	retry   retry.Policy
}

// document is the stored shape of a task.
type document struct {
	ID           any    `bson:"_id"`
	ProjectID    string `bson:"projectId"`
	Title        string `bson:"title"`
	Status       string `bson:"status"`
	Priority     string `bson:"priority,omitempty"`
	Dependencies []any  `bson:"dependencies,omitempty"`
	Assignee     string `bson:"assignee,omitempty"`
	DueDate      string `bson:"dueDate,omitempty"`
}

// New connects to MongoDB and verifies the server is reachable.
func New(ctx context.Context, cfg Config) (*Source, error) {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	opts := options.Client().
		ApplyURI(cfg.URI).
		SetServerSelectionTimeout(cfg.Timeout).
		SetConnectTimeout(cfg.Timeout)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeStoreUnavailable, err, "connect to mongodb")
	}

	pingCtx, cancel := context.WithTimeout(ctx, cfg.Timeout)
	defer cancel()
	if err := client.Ping(pingCtx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, errors.Wrap(errors.ErrCodeStoreUnavailable, err, "ping mongodb")
	}

	return newSource(client.Database(cfg.Database).Collection(cfg.Collection), cfg.Timeout), nil
}

func newSource(coll *mongo.Collection, timeout time.Duration) *Source {
	return &Source{
		client:  coll.Database().Client(),
		coll:    coll,
		timeout: timeout,
		retry:   retry.DefaultPolicy,
	}
}

// Name implements store.Source.
func (s *Source) Name() string { return "mongo" }

// Tasks implements store.Source. Transient network errors are retried with
// backoff.
//
// Projects have no document of their own, so an unknown project and a
// project without tasks look the same: both yield an empty list.
func (s *Source) Tasks(ctx context.Context, project string) ([]task.Task, error) {
	if err := errors.ValidateProjectID(project); err != nil {
		return nil, err
	}

	var docs []document
	err := s.retry.Do(ctx, func() error {
		qctx, cancel := context.WithTimeout(ctx, s.timeout)
		defer cancel()

		cur, err := s.coll.Find(qctx, Filter(project), options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
		if err != nil {
			return classify(err)
		}
		docs = docs[:0]
		if err := cur.All(qctx, &docs); err != nil {
			return classify(err)
		}
		return nil
	})
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, errors.Wrap(errors.ErrCodeStoreUnavailable, err, "query tasks of project %s", project)
	}
	return toTasks(docs), nil
}

// toTasks converts documents in order. The result is never nil.
func toTasks(docs []document) []task.Task {
	tasks := make([]task.Task, 0, len(docs))
	for _, d := range docs {
		tasks = append(tasks, d.task())
	}
	return tasks
}

// Close disconnects the client.
func (s *Source) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

// Filter selects the tasks of one project.
func Filter(project string) bson.D {
	return bson.D{{Key: "projectId", Value: project}}
}

func classify(err error) error {
	if mongo.IsNetworkError(err) || mongo.IsTimeout(err) {
		return retry.Transient(err)
	}
	return err
}

func (d document) task() task.Task {
	t := task.Task{
		ID:       idString(d.ID),
		Title:    d.Title,
		Status:   task.Status(d.Status),
		Priority: task.Priority(d.Priority),
		Assignee: d.Assignee,
		DueDate:  d.DueDate,
	}
	for _, dep := range d.Dependencies {
		if id := idString(dep); id != "" {
			t.Dependencies = append(t.Dependencies, id)
		}
	}
	return t
}

func idString(v any) string {
	switch id := v.(type) {
	case nil:
		return ""
	case primitive.ObjectID:
		return id.Hex()
	case string:
		return id
	default:
		return fmt.Sprint(id)
	}
}
