package mint

import (
	"fmt"
	"strings"
)

const (
	MinNameLen        = 3
	MinDescriptionLen = 10
)

// CollectionSpec describes the collection created by a run.
type CollectionSpec struct {
	Name        string
	Description string
	ImagePath   string
}

// ItemsSpec describes the items minted into the new collection.
// Folder wins over Paths when both are set.
type ItemsSpec struct {
	BaseName    string
	Description string

	Folder string   // every image in the folder, sorted by name
	Paths  []string // explicit image files, in the given order

	StartNumber uint32 // on-chain id of the first item
	Numbered    bool   // "<base> #<id>" instead of "<base>"

	UploadConcurrency int // parallel item uploads, 1 when unset
}

func (c CollectionSpec) Validate() error {
	if err := ValidateName(c.Name); err != nil {
		return fmt.Errorf("collection name: %w", err)
	}
	if err := ValidateDescription(c.Description); err != nil {
		return fmt.Errorf("collection description: %w", err)
	}
	if strings.TrimSpace(c.ImagePath) == "" {
		return fmt.Errorf("collection image is required")
	}
	return nil
}

func (s ItemsSpec) Validate() error {
	if err := ValidateName(s.BaseName); err != nil {
		return fmt.Errorf("item name: %w", err)
	}
	if err := ValidateDescription(s.Description); err != nil {
		return fmt.Errorf("item description: %w", err)
	}
	if s.Folder == "" && len(s.Paths) == 0 {
		return fmt.Errorf("no item images given")
	}
	if s.StartNumber < 1 {
		return fmt.Errorf("start number must be at least 1")
	}
	return nil
}

// ItemName is the on-chain display name of item id.
func (s ItemsSpec) ItemName(id uint32) string {
	base := strings.TrimSpace(s.BaseName)
	if !s.Numbered {
		return base
	}
	return fmt.Sprintf("%s #%d", base, id)
}

func (s ItemsSpec) concurrency() int {
	if s.UploadConcurrency < 1 {
		return 1
	}
	return s.UploadConcurrency
}

func ValidateName(name string) error {
	if len([]rune(strings.TrimSpace(name))) < MinNameLen {
		return fmt.Errorf("must be at least %d characters", MinNameLen)
	}
	return nil
}

func ValidateDescription(desc string) error {
	if len([]rune(strings.TrimSpace(desc))) < MinDescriptionLen {
		return fmt.Errorf("must be at least %d characters", MinDescriptionLen)
	}
	return nil
}
