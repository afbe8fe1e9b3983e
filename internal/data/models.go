package data

// BlogPost represents a single blog post. The markdown body lives on disk in
// the blog-posts content directory under Filename; only metadata is stored
// here. A post is publicly visible once PublishedAt is set and not in the
// future.
type BlogPost struct {
	ID          int64    `db:"id"`
	Title       string   `db:"title"`
	Filename    string   `db:"filename"`
	PublishedAt TextDate `db:"published_at"`
	CreatedAt   TextTime `db:"created_at"`
	UpdatedAt   TextTime `db:"updated_at"`
}

// Presentation represents a talk, optionally linked to the conferences it was
// given at. Conferences is hydrated by the repository, not mapped to a column.
type Presentation struct {
	ID           int64        `db:"id"`
	Title        string       `db:"title"`
	AbstractText string       `db:"abstract"`
	SlidesURL    string       `db:"slides_url"`
	GithubURL    string       `db:"github_url"`
	CreatedAt    TextTime     `db:"created_at"`
	UpdatedAt    TextTime     `db:"updated_at"`
	Conferences  []Conference `db:"-"`
}

// Conference represents a conference edition, unique on (title, year).
type Conference struct {
	ID        int64    `db:"id"`
	Title     string   `db:"title"`
	Year      int      `db:"year"`
	Link      string   `db:"link"`
	CreatedAt TextTime `db:"created_at"`
	UpdatedAt TextTime `db:"updated_at"`
}

// ConferencePresentation is the join record between a conference and a
// presentation. It carries its own timestamps beyond the two foreign keys.
type ConferencePresentation struct {
	ID             int64    `db:"id"`
	ConferenceID   int64    `db:"conference_id"`
	PresentationID int64    `db:"presentation_id"`
	CreatedAt      TextTime `db:"created_at"`
	UpdatedAt      TextTime `db:"updated_at"`
}

// Bio is the site owner's biography. The table is intended to hold exactly
// one row, accessed as the lowest-id row and created lazily when absent.
type Bio struct {
	ID        int64    `db:"id"`
	Name      string   `db:"name"`
	BriefBio  string   `db:"brief_bio"`
	Content   string   `db:"content"`
	CreatedAt TextTime `db:"created_at"`
	UpdatedAt TextTime `db:"updated_at"`
}

// ContactInfo holds the owner's email and social links, with the same
// lazy-singleton convention as Bio.
type ContactInfo struct {
	ID          int64    `db:"id"`
	Email       string   `db:"email"`
	GithubURL   string   `db:"github_url"`
	LinkedinURL string   `db:"linkedin_url"`
	TwitterURL  string   `db:"twitter_url"`
	UntappdURL  string   `db:"untapped_url"`
	CreatedAt   TextTime `db:"created_at"`
	UpdatedAt   TextTime `db:"updated_at"`
}

// User is an admin account. SessionToken records the single live session for
// the account; logging in elsewhere replaces it, which invalidates any prior
// session.
type User struct {
	ID             int64    `db:"id"`
	EmailAddress   string   `db:"email_address"`
	PasswordDigest string   `db:"password_digest"`
	SessionToken   string   `db:"session_token"`
	CreatedAt      TextTime `db:"created_at"`
	UpdatedAt      TextTime `db:"updated_at"`
}
