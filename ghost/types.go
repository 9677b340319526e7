package ghost

// Tag is a Ghost tag attached to a post. Display only.
type Tag struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug,omitempty"`
}

// Author is a Ghost staff user credited on a post.
type Author struct {
	ID   string `json:"id,omitempty"`
	Name string `json:"name"`
	Slug string `json:"slug,omitempty"`
}

// PostSummary is the card-level projection of a Ghost post.
type PostSummary struct {
	ID           string   `json:"id"`
	Slug         string   `json:"slug"`
	Title        string   `json:"title"`
	Excerpt      string   `json:"excerpt"`
	FeatureImage string   `json:"feature_image"`
	PublishedAt  string   `json:"published_at"`
	UpdatedAt    string   `json:"updated_at"`
	Tags         []Tag    `json:"tags"`
	Authors      []Author `json:"authors"`
}

// Post is a full Ghost post including the rendered HTML body.
type Post struct {
	PostSummary
	HTML            string `json:"html"`
	MetaTitle       string `json:"meta_title"`
	MetaDescription string `json:"meta_description"`
}

// Pagination is the cursor Ghost reports alongside a page of posts.
type Pagination struct {
	Page  int `json:"page"`
	Pages int `json:"pages"`
	Total int `json:"total,omitempty"`
}

// PostsPage is one page of post summaries. Pagination is nil when the
// upstream response carried no pagination metadata.
type PostsPage struct {
	Posts      []PostSummary `json:"posts"`
	Pagination *Pagination   `json:"pagination"`
}

// TagNames returns the non-empty tag names in order.
func (p PostSummary) TagNames() []string {
	names := make([]string, 0, len(p.Tags))
	for _, t := range p.Tags {
		if t.Name != "" {
			names = append(names, t.Name)
		}
	}
	return names
}

// AuthorNames returns the author names in order.
func (p PostSummary) AuthorNames() []string {
	names := make([]string, 0, len(p.Authors))
	for _, a := range p.Authors {
		if a.Name != "" {
			names = append(names, a.Name)
		}
	}
	return names
}

// postsEnvelope is the raw Content API response shape.
type postsEnvelope struct {
	Posts []Post `json:"posts"`
	Meta  *struct {
		Pagination *Pagination `json:"pagination"`
	} `json:"meta"`
}
