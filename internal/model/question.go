package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// QuestionType tags how a question's answer is rendered and validated.
type QuestionType string

const (
	QuestionText     QuestionType = "text"
	QuestionNumber   QuestionType = "number"
	QuestionTextarea QuestionType = "textarea"
	QuestionSelect   QuestionType = "select"
)

func (t QuestionType) IsValid() bool {
	switch t {
	case QuestionText, QuestionNumber, QuestionTextarea, QuestionSelect:
		return true
	}
	return false
}

// StringList stores an ordered list of option strings as a JSON text column.
// Nil means the question has no options (every type except select).
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return nil, nil
	}
	b, err := json.Marshal([]string(l))
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (l *StringList) Scan(value interface{}) error {
	if value == nil {
		*l = nil
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	default:
		return fmt.Errorf("unsupported type %T for StringList", value)
	}
}

// Question is one entry in the dynamic form catalog. Key is the stable slug
// answers are stored under and must stay unique across the registry.
type Question struct {
	ID         uint         `gorm:"primarykey" json:"id"`
	Key        string       `json:"key" gorm:"not null;uniqueIndex"`
	Label      string       `json:"label" gorm:"not null"`
	Type       QuestionType `json:"type" gorm:"type:varchar(16);not null"`
	Options    StringList   `json:"options" gorm:"type:text"`
	Order      int          `json:"order" gorm:"column:sort_order;not null;default:0;index"`
	IsRequired bool         `json:"is_required" gorm:"not null;default:false"`
	CreatedAt  time.Time    `json:"created_at"`
	UpdatedAt  time.Time    `json:"updated_at"`
}
