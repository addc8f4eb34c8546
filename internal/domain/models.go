// Package domain defines the persistence models for users, courses, videos,
// and one-time video access links. These types are mapped with GORM and form
// the core data layer of the course platform.
package domain

import (
	"time"

	"gorm.io/gorm"
)

// User roles.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// SubscriptionRecord is the stored snapshot of a user's subscription to one
// external platform. It is mutated exclusively by the reconciliation step of
// the access gate (and the explicit verify endpoints, which run the same
// logic) — never by the user directly.
//
// Invariant: Subscribed == true implies VerifiedAt is set to the moment of
// the most recent successful live check; Subscribed == false implies
// VerifiedAt is nil. The field is never stale-true.
type SubscriptionRecord struct {
	Subscribed bool    `json:"subscribed" gorm:"not null;default:false"`
	Username   *string `json:"username,omitempty" gorm:"type:varchar(64)"`
	// ExternalUserID is the platform-side numeric identity, stored as a
	// string. Only Telegram populates it; the live membership check is
	// impossible without it.
	ExternalUserID *string    `json:"external_user_id,omitempty" gorm:"type:varchar(32)"`
	VerifiedAt     *time.Time `json:"verified_at,omitempty"`
}

// User represents a registered platform user together with the stored
// (possibly stale) subscription snapshot for each gated platform.
//
// Fields:
//   - ID: stable UUID primary key (char(36)).
//   - Username / Email: unique identity columns.
//   - PasswordHash / RefreshToken: credential columns, never serialized.
//   - Role: "user" or "admin" (enforced by DB constraint).
//   - Instagram / Telegram: per-platform SubscriptionRecord snapshots,
//     flattened into prefixed columns.
//   - IsActive: deactivated accounts cannot authenticate.
type User struct {
	ID           string `json:"id"       gorm:"type:char(36);primaryKey"`
	Username     string `json:"username" gorm:"type:varchar(30);not null;uniqueIndex:ux_users_username"`
	Email        string `json:"email"    gorm:"type:varchar(255);not null;uniqueIndex:ux_users_email"`
	PasswordHash string `json:"-"        gorm:"type:varchar(128);not null"`
	RefreshToken string `json:"-"        gorm:"type:text"`
	Role         string `json:"role"     gorm:"type:varchar(16);not null;default:'user';check:role IN ('user','admin')"`

	Instagram SubscriptionRecord `json:"instagram" gorm:"embedded;embeddedPrefix:instagram_"`
	Telegram  SubscriptionRecord `json:"telegram"  gorm:"embedded;embeddedPrefix:telegram_"`

	IsActive  bool           `json:"is_active" gorm:"not null;default:true"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

// TableName returns the database table name for User.
func (User) TableName() string { return "users" }

// HasAllSubscriptions reports whether the stored snapshot shows the user
// subscribed on every gated platform. Callers that gate content must not rely
// on this alone; the access gate re-verifies live before granting access.
func (u *User) HasAllSubscriptions() bool {
	return u.Instagram.Subscribed && u.Telegram.Subscribed
}

// Course represents a sellable course owned by an instructor. Videos hang off
// a course and inherit its visibility through their own IsActive flag.
type Course struct {
	ID           string         `json:"id"            gorm:"type:char(36);primaryKey"`
	Title        string         `json:"title"         gorm:"type:varchar(255);not null"`
	Description  string         `json:"description"   gorm:"type:text;not null"`
	Thumbnail    *string        `json:"thumbnail,omitempty" gorm:"type:text"`
	Price        float64        `json:"price"         gorm:"not null;check:price >= 0"`
	Category     string         `json:"category"      gorm:"type:varchar(64);not null;default:'general';index"`
	InstructorID string         `json:"instructor_id" gorm:"type:char(36);not null;index"`
	IsActive     bool           `json:"is_active"     gorm:"not null;default:true"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `json:"-" gorm:"index"`
}

// TableName returns the database table name for Course.
func (Course) TableName() string { return "courses" }

// Video is a single lesson within a course. The actual content lives in an
// external channel; the platform only hands out one-time access links to it.
type Video struct {
	ID          string         `json:"id"          gorm:"type:char(36);primaryKey"`
	CourseID    string         `json:"course_id"   gorm:"type:char(36);not null;index:idx_course_videos,priority:1"`
	Title       string         `json:"title"       gorm:"type:varchar(255);not null"`
	Description string         `json:"description" gorm:"type:text"`
	Position    int            `json:"position"    gorm:"not null;default:0;index:idx_course_videos,priority:2"`
	Duration    int            `json:"duration"    gorm:"not null;default:0"` // seconds
	Thumbnail   *string        `json:"thumbnail,omitempty" gorm:"type:text"`
	IsActive    bool           `json:"is_active"   gorm:"not null;default:true"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `json:"-" gorm:"index"`

	// Course is the parent course. Videos are cascade-deleted if their
	// course is removed.
	Course Course `json:"-" gorm:"foreignKey:CourseID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

// TableName returns the database table name for Video.
func (Video) TableName() string { return "videos" }

// AccessLink is a single-use, time-boxed grant to view one video for one
// user. The lifecycle is Unused → Used, exactly once, irreversibly; expiry is
// a logical state derived from ExpiresAt at read time, not a stored enum.
//
// Invariant: at most one unused link may exist per (UserID, VideoID) at any
// time. A partial unique index on (user_id, video_id) WHERE is_used = 0
// enforces this at the storage layer (see repo.AutoMigrate); used links for
// the same pair may accumulate as history. Links are never deleted here.
type AccessLink struct {
	ID              string     `json:"id"               gorm:"type:char(36);primaryKey"`
	VideoID         string     `json:"video_id"         gorm:"type:char(36);not null;index:idx_user_video_links,priority:2"`
	UserID          string     `json:"user_id"          gorm:"type:char(36);not null;index:idx_user_video_links,priority:1"`
	DestinationLink string     `json:"destination_link" gorm:"type:text;not null"`
	IsUsed          bool       `json:"is_used"          gorm:"not null;default:false;index"`
	UsedAt          *time.Time `json:"used_at,omitempty"`
	ExpiresAt       *time.Time `json:"expires_at,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`

	Video Video `json:"-" gorm:"foreignKey:VideoID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	User  User  `json:"-" gorm:"foreignKey:UserID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

// TableName returns the database table name for AccessLink.
func (AccessLink) TableName() string { return "access_links" }

// Expired reports whether the link's expiry, when set, lies before now.
func (l *AccessLink) Expired(now time.Time) bool {
	return l.ExpiresAt != nil && now.After(*l.ExpiresAt)
}
