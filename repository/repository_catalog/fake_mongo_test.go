package repository_catalog

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/Super-Badmen-Viper/VibeJewel/mongo"
	"go.mongodb.org/mongo-driver/bson"
	driver "go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// fakeDatabase 内存实现，只覆盖目录仓储用到的操作
type fakeDatabase struct {
	mu          sync.Mutex
	collections map[string]*fakeCollection
}

func newFakeDatabase() *fakeDatabase {
	return &fakeDatabase{collections: map[string]*fakeCollection{}}
}

func (d *fakeDatabase) Collection(name string) mongo.Collection {
	d.mu.Lock()
	defer d.mu.Unlock()
	c, ok := d.collections[name]
	if !ok {
		c = &fakeCollection{docs: map[string]bson.Raw{}}
		d.collections[name] = c
	}
	return c
}

func (d *fakeDatabase) Client() mongo.Client { return nil }

type fakeCollection struct {
	mu      sync.Mutex
	docs    map[string]bson.Raw
	indexes []string
}

func docKey(id interface{}) string { return fmt.Sprint(id) }

func (c *fakeCollection) FindOne(_ context.Context, filter interface{}) mongo.SingleResult {
	c.mu.Lock()
	defer c.mu.Unlock()
	m, _ := filter.(bson.M)
	doc, ok := c.docs[docKey(m["_id"])]
	if !ok {
		return fakeSingleResult{err: driver.ErrNoDocuments}
	}
	return fakeSingleResult{doc: doc}
}

func (c *fakeCollection) DeleteMany(context.Context, interface{}) (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := int64(len(c.docs))
	c.docs = map[string]bson.Raw{}
	return n, nil
}

// Find 忽略过滤条件，按键逆序返回，调用方负责排序
func (c *fakeCollection) Find(context.Context, interface{}, ...*options.FindOptions) (mongo.Cursor, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	keys := make([]string, 0, len(c.docs))
	for k := range c.docs {
		keys = append(keys, k)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(keys)))
	docs := make([]bson.Raw, 0, len(keys))
	for _, k := range keys {
		docs = append(docs, c.docs[k])
	}
	return &fakeCursor{docs: docs, pos: -1}, nil
}

func (c *fakeCollection) CountDocuments(context.Context, interface{}, ...*options.CountOptions) (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return int64(len(c.docs)), nil
}

func (c *fakeCollection) Indexes() mongo.IndexView { return &fakeIndexView{coll: c} }

func (c *fakeCollection) BulkWrite() mongo.BulkWrite { return &fakeBulkWrite{coll: c} }

func (c *fakeCollection) put(id interface{}, doc bson.Raw) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	key := docKey(id)
	_, existed := c.docs[key]
	c.docs[key] = doc
	return !existed
}

type fakeSingleResult struct {
	doc bson.Raw
	err error
}

func (r fakeSingleResult) Decode(v interface{}) error {
	if r.err != nil {
		return r.err
	}
	return bson.Unmarshal(r.doc, v)
}

type fakeCursor struct {
	docs []bson.Raw
	pos  int
}

func (c *fakeCursor) Close(context.Context) error { return nil }

func (c *fakeCursor) Next(context.Context) bool {
	c.pos++
	return c.pos < len(c.docs)
}

func (c *fakeCursor) Decode(v interface{}) error { return bson.Unmarshal(c.docs[c.pos], v) }

func (c *fakeCursor) All(context.Context, interface{}) error {
	return fmt.Errorf("fake cursor: All not supported")
}

type fakeIndexView struct {
	coll *fakeCollection
}

func (v *fakeIndexView) CreateOne(_ context.Context, model driver.IndexModel) (string, error) {
	name := ""
	if model.Options != nil && model.Options.Name != nil {
		name = *model.Options.Name
	}
	v.coll.mu.Lock()
	v.coll.indexes = append(v.coll.indexes, name)
	v.coll.mu.Unlock()
	return name, nil
}

type fakeBulkWrite struct {
	coll   *fakeCollection
	models []mongo.BulkModel
}

func (b *fakeBulkWrite) AddModel(models ...mongo.BulkModel) {
	b.models = append(b.models, models...)
}

func (b *fakeBulkWrite) Execute(context.Context) (mongo.BulkWriteResult, error) {
	res := &fakeBulkResult{}
	for _, m := range b.models {
		model, ok := m.(*driver.UpdateOneModel)
		if !ok {
			return nil, fmt.Errorf("fake bulk write: unsupported model %T", m)
		}
		filter, _ := model.Filter.(bson.M)
		update, _ := model.Update.(bson.M)
		doc, err := bson.Marshal(update["$set"])
		if err != nil {
			return nil, err
		}
		if b.coll.put(filter["_id"], doc) {
			res.upserted++
		} else {
			res.modified++
		}
	}
	return res, nil
}

type fakeBulkResult struct {
	upserted int64
	modified int64
}

func (r *fakeBulkResult) InsertedCount() int64               { return 0 }
func (r *fakeBulkResult) MatchedCount() int64                { return r.modified }
func (r *fakeBulkResult) ModifiedCount() int64               { return r.modified }
func (r *fakeBulkResult) DeletedCount() int64                { return 0 }
func (r *fakeBulkResult) UpsertedCount() int64               { return r.upserted }
func (r *fakeBulkResult) UpsertedIDs() map[int64]interface{} { return nil }
