package entity

import "time"

// Post is a blog article. Reactions is the server-side aggregate that seeds
// a visitor's reaction counts.
type Post struct {
	ID            string         `bson:"_id" json:"id"`
	Title         string         `bson:"title" json:"title"`
	Slug          string         `bson:"slug" json:"slug"`
	ContentHTML   string         `bson:"content_html" json:"content_html"`
	Author        Author         `bson:"author" json:"author"`
	PublishedAt   time.Time      `bson:"published_at" json:"published_at"`
	FeaturedImage string         `bson:"featured_image" json:"featured_image"`
	IsTrending    bool           `bson:"is_trending" json:"is_trending"`
	Tags          []string       `bson:"tags" json:"tags"`
	Views         int            `bson:"views" json:"views"`
	CommentsCount int            `bson:"comments_count" json:"comments_count"`
	Reactions     ReactionCounts `bson:"reactions" json:"reactions"`
}
