// Copyright (c) 2025 Business Talk.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/businesstalk/backend/models"
)

// ServerSelectionTimeout bounds the initial connection attempt so startup
// can fall back to demo mode instead of hanging.
const ServerSelectionTimeout = 5 * time.Second

// Mongo is the live ContentSource backed by MongoDB.
type Mongo struct {
	client   *mongo.Client
	podcasts *mongo.Collection
	blogs    *mongo.Collection
	about    *mongo.Collection
	users    *mongo.Collection
	settings *mongo.Collection
}

var _ ContentSource = (*Mongo)(nil)

// NewMongo connects, pings, and wraps the collections. A failed ping
// returns an error rather than a half-initialized source.
func NewMongo(ctx context.Context, uri, dbName string) (*Mongo, error) {
	opts := options.Client().
		ApplyURI(uri).
		SetServerSelectionTimeout(ServerSelectionTimeout)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("mongo ping: %w", err)
	}

	db := client.Database(dbName)
	return &Mongo{
		client:   client,
		podcasts: db.Collection("podcasts"),
		blogs:    db.Collection("blogs"),
		about:    db.Collection("aboutus"),
		users:    db.Collection("users"),
		settings: db.Collection("settings"),
	}, nil
}

func (m *Mongo) Ping(ctx context.Context) error {
	return m.client.Ping(ctx, nil)
}

func (m *Mongo) Close(ctx context.Context) error {
	return m.client.Disconnect(ctx)
}

// Podcasts

func (m *Mongo) ListPodcasts(ctx context.Context, q ListQuery) ([]models.Podcast, int, error) {
	q = q.Normalized()
	filter := q.Filter()

	total, err := m.podcasts.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("count podcasts: %w", err)
	}

	cursor, err := m.podcasts.Find(ctx, filter, q.FindOptions())
	if err != nil {
		return nil, 0, fmt.Errorf("list podcasts: %w", err)
	}
	defer cursor.Close(ctx)

	items := make([]models.Podcast, 0, q.Limit)
	if err := cursor.All(ctx, &items); err != nil {
		return nil, 0, fmt.Errorf("decode podcasts: %w", err)
	}
	return items, int(total), nil
}

func (m *Mongo) GetPodcast(ctx context.Context, id string) (*models.Podcast, error) {
	var p models.Podcast
	err := m.podcasts.FindOne(ctx, bson.M{"_id": id}).Decode(&p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get podcast: %w", err)
	}
	return &p, nil
}

func (m *Mongo) CreatePodcast(ctx context.Context, p *models.Podcast) error {
	preparePodcast(p, true)
	if err := CheckPodcastSize(p); err != nil {
		return err
	}
	if _, err := m.podcasts.InsertOne(ctx, p); err != nil {
		return fmt.Errorf("insert podcast: %w", err)
	}
	return nil
}

func (m *Mongo) UpdatePodcast(ctx context.Context, p *models.Podcast) error {
	preparePodcast(p, false)
	if err := CheckPodcastSize(p); err != nil {
		return err
	}
	res, err := m.podcasts.ReplaceOne(ctx, bson.M{"_id": p.ID}, p)
	if err != nil {
		return fmt.Errorf("replace podcast: %w", err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (m *Mongo) DeletePodcast(ctx context.Context, id string) error {
	res, err := m.podcasts.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete podcast: %w", err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (m *Mongo) PodcastExists(ctx context.Context, title string, episodeNumber int) (bool, error) {
	filter := bson.M{"$or": bson.A{
		bson.M{"title": title},
		bson.M{"episodeNumber": episodeNumber},
	}}
	n, err := m.podcasts.CountDocuments(ctx, filter)
	if err != nil {
		return false, fmt.Errorf("count duplicates: %w", err)
	}
	return n > 0, nil
}

// RepairCategories restores the category/youtubeUrl convention: an episode
// with a YouTube link has already aired, one without has not. The rule is
// not enforced at write time, so drift accumulates and gets repaired here.
func (m *Mongo) RepairCategories(ctx context.Context) (int, error) {
	toPast, err := m.podcasts.UpdateMany(ctx,
		bson.M{
			"youtubeUrl": bson.M{"$exists": true, "$ne": ""},
			"category":   bson.M{"$ne": models.CategoryPast},
		},
		bson.M{"$set": bson.M{"category": models.CategoryPast}},
	)
	if err != nil {
		return 0, fmt.Errorf("repair to past: %w", err)
	}

	toUpcoming, err := m.podcasts.UpdateMany(ctx,
		bson.M{
			"$or": bson.A{
				bson.M{"youtubeUrl": bson.M{"$exists": false}},
				bson.M{"youtubeUrl": ""},
			},
			"category": bson.M{"$ne": models.CategoryUpcoming},
		},
		bson.M{"$set": bson.M{"category": models.CategoryUpcoming}},
	)
	if err != nil {
		return 0, fmt.Errorf("repair to upcoming: %w", err)
	}

	return int(toPast.ModifiedCount + toUpcoming.ModifiedCount), nil
}

// Blogs

func (m *Mongo) ListBlogs(ctx context.Context, q BlogQuery) ([]models.Blog, int, error) {
	q = q.Normalized()
	filter := q.Filter()

	total, err := m.blogs.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("count blogs: %w", err)
	}

	cursor, err := m.blogs.Find(ctx, filter, q.FindOptions())
	if err != nil {
		return nil, 0, fmt.Errorf("list blogs: %w", err)
	}
	defer cursor.Close(ctx)

	items := make([]models.Blog, 0, q.Limit)
	if err := cursor.All(ctx, &items); err != nil {
		return nil, 0, fmt.Errorf("decode blogs: %w", err)
	}
	return items, int(total), nil
}

func (m *Mongo) GetBlog(ctx context.Context, id string) (*models.Blog, error) {
	var b models.Blog
	err := m.blogs.FindOne(ctx, bson.M{"_id": id}).Decode(&b)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get blog: %w", err)
	}
	return &b, nil
}

func (m *Mongo) CreateBlog(ctx context.Context, b *models.Blog) error {
	prepareBlog(b, true)
	if _, err := m.blogs.InsertOne(ctx, b); err != nil {
		return fmt.Errorf("insert blog: %w", err)
	}
	return nil
}

func (m *Mongo) UpdateBlog(ctx context.Context, b *models.Blog) error {
	prepareBlog(b, false)
	res, err := m.blogs.ReplaceOne(ctx, bson.M{"_id": b.ID}, b)
	if err != nil {
		return fmt.Errorf("replace blog: %w", err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (m *Mongo) DeleteBlog(ctx context.Context, id string) error {
	res, err := m.blogs.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete blog: %w", err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// About

func (m *Mongo) GetAbout(ctx context.Context) (*models.AboutUs, error) {
	var a models.AboutUs
	err := m.about.FindOne(ctx, bson.M{}).Decode(&a)
	if errors.Is(err, mongo.ErrNoDocuments) {
		a := DefaultAbout()
		a.ID = primitive.NewObjectID().Hex()
		a.UpdatedAt = time.Now().UTC()
		if _, err := m.about.InsertOne(ctx, a); err != nil {
			return nil, fmt.Errorf("seed about: %w", err)
		}
		return a, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get about: %w", err)
	}
	return &a, nil
}

func (m *Mongo) PutAbout(ctx context.Context, a *models.AboutUs) error {
	current, err := m.GetAbout(ctx)
	if err != nil {
		return err
	}
	a.ID = current.ID
	a.UpdatedAt = time.Now().UTC()
	if _, err := m.about.ReplaceOne(ctx, bson.M{"_id": a.ID}, a); err != nil {
		return fmt.Errorf("replace about: %w", err)
	}
	return nil
}

// Settings

const settingsDocID = "site-settings"

func (m *Mongo) GetSettings(ctx context.Context) (*models.SiteSettings, error) {
	var s models.SiteSettings
	err := m.settings.FindOne(ctx, bson.M{"_id": settingsDocID}).Decode(&s)
	if errors.Is(err, mongo.ErrNoDocuments) {
		defaults := models.DefaultSettings()
		defaults.ID = settingsDocID
		return &defaults, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get settings: %w", err)
	}
	return &s, nil
}

func (m *Mongo) PutSettings(ctx context.Context, s *models.SiteSettings) error {
	s.ID = settingsDocID
	opts := options.Replace().SetUpsert(true)
	if _, err := m.settings.ReplaceOne(ctx, bson.M{"_id": settingsDocID}, s, opts); err != nil {
		return fmt.Errorf("replace settings: %w", err)
	}
	return nil
}

// Users

func (m *Mongo) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	err := m.users.FindOne(ctx, bson.M{"email": email}).Decode(&u)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get user by email: %w", err)
	}
	return &u, nil
}

func (m *Mongo) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	var u models.User
	err := m.users.FindOne(ctx, bson.M{"_id": id}).Decode(&u)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get user by id: %w", err)
	}
	return &u, nil
}

func (m *Mongo) CreateUser(ctx context.Context, u *models.User) error {
	if u.ID == "" {
		u.ID = primitive.NewObjectID().Hex()
	}
	u.CreatedAt = time.Now().UTC()
	if _, err := m.users.InsertOne(ctx, u); err != nil {
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// preparePodcast fills store-managed fields before a write.
func preparePodcast(p *models.Podcast, isNew bool) {
	p.Normalize()
	if p.Tags == nil {
		p.Tags = []string{}
	}
	if p.Guests == nil {
		p.Guests = []models.Guest{}
	}
	now := time.Now().UTC()
	if isNew {
		if p.ID == "" {
			p.ID = primitive.NewObjectID().Hex()
		}
		p.CreatedAt = now
	}
	p.UpdatedAt = now
}

func prepareBlog(b *models.Blog, isNew bool) {
	if b.Tags == nil {
		b.Tags = []string{}
	}
	now := time.Now().UTC()
	if isNew {
		if b.ID == "" {
			b.ID = primitive.NewObjectID().Hex()
		}
		b.CreatedAt = now
	}
	b.UpdatedAt = now
}
