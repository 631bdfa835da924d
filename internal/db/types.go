package db

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/anand/career-pilot/internal/types"
)

// User represents a registered account. Phone number is the login identity.
type User struct {
	ID           uuid.UUID `json:"id"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name,omitempty"`
	PhoneNumber  string    `json:"phone_number"`
	Email        string    `json:"email,omitempty"`
	PasswordHash string    `json:"-" db:"password_hash"` // Never serialize to JSON
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Profile holds the career details a user fills in after registering.
// Skills, Industries, Experience and Education are stored as JSONB.
type Profile struct {
	UserID        uuid.UUID      `json:"user_id"`
	Qualification string         `json:"qualification,omitempty"`
	DateOfBirth   *Date          `json:"date_of_birth,omitempty"`
	Address       string         `json:"address,omitempty"`
	Skills        StringArray    `json:"skills"`
	Industries    StringArray    `json:"industries"`
	Experience    ExperienceList `json:"experience"`
	Education     EducationList  `json:"education"`
	UpdatedAt     time.Time      `json:"updated_at"`
}

// Date is a custom type for handling SQL DATE (YYYY-MM-DD)
type Date struct {
	time.Time
}

// Scan implements the Scanner interface
func (d *Date) Scan(value interface{}) error {
	if value == nil {
		return nil
	}
	t, ok := value.(time.Time)
	if !ok {
		return errors.New("failed to scan Date")
	}
	d.Time = t
	return nil
}

// Value implements the Valuer interface
func (d *Date) Value() (driver.Value, error) {
	if d == nil {
		return nil, nil
	}
	return d.Time, nil
}

// MarshalJSON implements json.Marshaler
func (d *Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(d.Format("2006-01-02"))
}

// UnmarshalJSON implements json.Unmarshaler
func (d *Date) UnmarshalJSON(data []byte) error {
	str := string(data)
	if str == "null" || str == `""` {
		return nil
	}
	// Trim quotes
	if len(str) > 2 && str[0] == '"' && str[len(str)-1] == '"' {
		str = str[1 : len(str)-1]
	}
	var err error
	d.Time, err = time.Parse("2006-01-02", str)
	return err
}

// StringArray handles JSONB string arrays
type StringArray []string

// Scan implements the Scanner interface for StringArray
func (a *StringArray) Scan(src interface{}) error {
	if src == nil {
		*a = []string{}
		return nil
	}
	source, ok := src.([]byte)
	if !ok {
		return errors.New("type assertion .([]byte) failed")
	}
	return json.Unmarshal(source, a)
}

// Value implements the Valuer interface for StringArray
func (a StringArray) Value() (driver.Value, error) {
	if a == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(a)
}

// ExperienceList handles employment history entries as a JSONB column
type ExperienceList []types.ExperienceEntry

// Scan implements the Scanner interface for ExperienceList
func (l *ExperienceList) Scan(src interface{}) error {
	if src == nil {
		*l = ExperienceList{}
		return nil
	}
	source, ok := src.([]byte)
	if !ok {
		return errors.New("type assertion .([]byte) failed")
	}
	return json.Unmarshal(source, l)
}

// Value implements the Valuer interface for ExperienceList
func (l ExperienceList) Value() (driver.Value, error) {
	if l == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(l)
}

// EducationList handles education history entries as a JSONB column
type EducationList []types.EducationEntry

// Scan implements the Scanner interface for EducationList
func (l *EducationList) Scan(src interface{}) error {
	if src == nil {
		*l = EducationList{}
		return nil
	}
	source, ok := src.([]byte)
	if !ok {
		return errors.New("type assertion .([]byte) failed")
	}
	return json.Unmarshal(source, l)
}

// Value implements the Valuer interface for EducationList
func (l EducationList) Value() (driver.Value, error) {
	if l == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(l)
}
