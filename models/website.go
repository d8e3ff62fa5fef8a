package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// PricingModel represents the pricing model of a website
type PricingModel string

const (
	PricingModelFree         PricingModel = "free"
	PricingModelFreemium     PricingModel = "freemium"
	PricingModelPaid         PricingModel = "paid"
	PricingModelSubscription PricingModel = "subscription"
	PricingModelOneTime      PricingModel = "one_time"
	PricingModelCustom       PricingModel = "custom"
)

// String returns the string representation of the pricing model
func (p PricingModel) String() string {
	return string(p)
}

// Valid checks if the pricing model is valid
func (p PricingModel) Valid() bool {
	switch p {
	case PricingModelFree, PricingModelFreemium, PricingModelPaid,
		PricingModelSubscription, PricingModelOneTime, PricingModelCustom:
		return true
	default:
		return false
	}
}

// Scan implements the sql.Scanner interface for PricingModel
func (p *PricingModel) Scan(value any) error {
	if value == nil {
		*p = ""
		return nil
	}

	switch v := value.(type) {
	case string:
		*p = PricingModel(v)
	case []byte:
		*p = PricingModel(string(v))
	default:
		return fmt.Errorf("cannot scan %T into PricingModel", value)
	}

	return nil
}

// Value implements the driver.Valuer interface for PricingModel
func (p PricingModel) Value() (driver.Value, error) {
	if !p.Valid() {
		return nil, fmt.Errorf("invalid PricingModel: %s", p)
	}
	return string(p), nil
}

// WebsiteStatus represents the moderation status of a website
type WebsiteStatus string

const (
	WebsiteStatusPending  WebsiteStatus = "pending"
	WebsiteStatusApproved WebsiteStatus = "approved"
	WebsiteStatusRejected WebsiteStatus = "rejected"
)

// String returns the string representation of the status
func (s WebsiteStatus) String() string {
	return string(s)
}

// Valid checks if the status is valid
func (s WebsiteStatus) Valid() bool {
	switch s {
	case WebsiteStatusPending, WebsiteStatusApproved, WebsiteStatusRejected:
		return true
	default:
		return false
	}
}

// Scan implements the sql.Scanner interface for WebsiteStatus
func (s *WebsiteStatus) Scan(value any) error {
	if value == nil {
		*s = ""
		return nil
	}

	switch v := value.(type) {
	case string:
		*s = WebsiteStatus(v)
	case []byte:
		*s = WebsiteStatus(string(v))
	default:
		return fmt.Errorf("cannot scan %T into WebsiteStatus", value)
	}

	return nil
}

// Value implements the driver.Valuer interface for WebsiteStatus
func (s WebsiteStatus) Value() (driver.Value, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("invalid WebsiteStatus: %s", s)
	}
	return string(s), nil
}

// StringList is a JSON-encoded list of strings stored in a jsonb column.
// Malformed column content decodes to an empty list instead of failing the row.
type StringList []string

// Value implements the driver.Valuer interface for StringList
func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return json.Marshal([]string{})
	}
	return json.Marshal([]string(l))
}

// Scan implements the sql.Scanner interface for StringList
func (l *StringList) Scan(value any) error {
	*l = StringList{}
	if value == nil {
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return fmt.Errorf("cannot scan %T into StringList", value)
	}

	var items []string
	if err := json.Unmarshal(bytes, &items); err != nil {
		// Bad column content must not poison the whole result page
		return nil
	}
	*l = items
	return nil
}

// Screenshot is a single screenshot entry
type Screenshot struct {
	URL     string `json:"url"`
	Caption string `json:"caption,omitempty"`
}

// ScreenshotList is a JSON-encoded list of screenshots stored in a jsonb column.
// Malformed column content decodes to an empty list.
type ScreenshotList []Screenshot

// Value implements the driver.Valuer interface for ScreenshotList
func (l ScreenshotList) Value() (driver.Value, error) {
	if l == nil {
		return json.Marshal([]Screenshot{})
	}
	return json.Marshal([]Screenshot(l))
}

// Scan implements the sql.Scanner interface for ScreenshotList
func (l *ScreenshotList) Scan(value any) error {
	*l = ScreenshotList{}
	if value == nil {
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return fmt.Errorf("cannot scan %T into ScreenshotList", value)
	}

	var items []Screenshot
	if err := json.Unmarshal(bytes, &items); err != nil {
		return nil
	}
	*l = items
	return nil
}

// ProsCons holds the pros/cons lists of a website.
// Malformed column content decodes to empty lists.
type ProsCons struct {
	Pros []string `json:"pros"`
	Cons []string `json:"cons"`
}

// Value implements the driver.Valuer interface for ProsCons
func (p ProsCons) Value() (driver.Value, error) {
	if p.Pros == nil {
		p.Pros = []string{}
	}
	if p.Cons == nil {
		p.Cons = []string{}
	}
	return json.Marshal(p)
}

// Scan implements the sql.Scanner interface for ProsCons
func (p *ProsCons) Scan(value any) error {
	*p = ProsCons{Pros: []string{}, Cons: []string{}}
	if value == nil {
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return fmt.Errorf("cannot scan %T into ProsCons", value)
	}

	var decoded ProsCons
	if err := json.Unmarshal(bytes, &decoded); err != nil {
		return nil
	}
	if decoded.Pros == nil {
		decoded.Pros = []string{}
	}
	if decoded.Cons == nil {
		decoded.Cons = []string{}
	}
	*p = decoded
	return nil
}

// Website represents a cataloged tool in the database.
// Only websites with status "approved" are visible to search and rankings.
type Website struct {
	ID             uint           `gorm:"primaryKey" json:"id"`
	UUID           uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex:uk_websites_uuid" json:"uuid"`
	Title          string         `gorm:"size:200;not null" json:"title"`
	Slug           string         `gorm:"size:200;not null;uniqueIndex:uk_websites_slug" json:"slug"`
	Tagline        string         `gorm:"size:300" json:"tagline"`
	Description    string         `gorm:"type:text" json:"description"`
	URL            string         `gorm:"size:500;not null" json:"url"`
	LogoURL        *string        `gorm:"size:500" json:"logo_url,omitempty"`
	ThumbnailURL   *string        `gorm:"size:500" json:"thumbnail_url,omitempty"`
	CategoryID     uint           `gorm:"not null;index:idx_websites_category_id" json:"category_id"`
	Category       *Category      `gorm:"foreignKey:CategoryID" json:"-"`
	Tags           StringList     `gorm:"type:jsonb;default:'[]'" json:"tags"`
	PricingModel   PricingModel   `gorm:"type:varchar(20);not null;default:'free';index:idx_websites_pricing_model" json:"pricing_model"`
	HasFreeVersion bool           `gorm:"not null;default:false" json:"has_free_version"`
	QualityScore   int            `gorm:"not null;default:0" json:"quality_score"`
	Visits         int64          `gorm:"not null;default:0" json:"visits"`
	Likes          int64          `gorm:"not null;default:0" json:"likes"`
	IsFeatured     bool           `gorm:"not null;default:false" json:"is_featured"`
	IsTrusted      bool           `gorm:"not null;default:false" json:"is_trusted"`
	SSLEnabled     bool           `gorm:"not null;default:false" json:"ssl_enabled"`
	Status         WebsiteStatus  `gorm:"type:varchar(20);not null;default:'pending';index:idx_websites_status" json:"status"`
	Features       StringList     `gorm:"type:jsonb;default:'[]'" json:"features"`
	Screenshots    ScreenshotList `gorm:"type:jsonb;default:'[]'" json:"screenshots"`
	ProsCons       ProsCons       `gorm:"type:jsonb;default:'{}'" json:"pros_cons"`
	CreatedAt      time.Time      `gorm:"not null;index:idx_websites_created_at" json:"created_at"`
	UpdatedAt      time.Time      `gorm:"not null" json:"updated_at"`
}

// TableName returns the table name for the Website model
func (Website) TableName() string {
	return "websites"
}

// IsApproved checks if the website is visible to search and rankings
func (w *Website) IsApproved() bool {
	return w.Status == WebsiteStatusApproved
}
