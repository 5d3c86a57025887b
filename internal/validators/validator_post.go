package validators

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/go-post-board/models"
)

const (
	FieldUserID = "user_id"
	FieldTitle  = "title"
	FieldBody   = "body"
	FieldPatch  = "patch"
)

const (
	MaxTitleLength = 255
	MaxBodyLength  = 10_000
)

type PostValidator struct{}

func NewPostValidator() Validator {
	return &PostValidator{}
}

func (v *PostValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.PostDraft:
		return v.validateDraft(value, fields...)
	case *models.PostDraft:
		return v.validateDraft(*value, fields...)

	case models.PostPatch:
		return v.validatePatch(value, fields...)
	case *models.PostPatch:
		return v.validatePatch(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *PostValidator) validateDraft(draft models.PostDraft, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUserID, FieldTitle, FieldBody}
	}

	for _, f := range fields {
		switch f {
		case FieldUserID:
			if err := checkUserID(draft.UserID); err != nil {
				return err
			}
		case FieldTitle:
			if err := checkTitle(draft.Title); err != nil {
				return err
			}
		case FieldBody:
			if err := checkBody(draft.Body); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validatePatch only checks the fields the patch actually sets.
func (v *PostValidator) validatePatch(patch models.PostPatch, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldPatch, FieldUserID, FieldTitle, FieldBody}
	}

	for _, f := range fields {
		switch f {
		case FieldPatch:
			if patch.IsEmpty() {
				return models.ErrEmptyPatch
			}
		case FieldUserID:
			if patch.UserID != nil {
				if err := checkUserID(*patch.UserID); err != nil {
					return err
				}
			}
		case FieldTitle:
			if patch.Title != nil {
				if err := checkTitle(*patch.Title); err != nil {
					return err
				}
			}
		case FieldBody:
			if patch.Body != nil {
				if err := checkBody(*patch.Body); err != nil {
					return err
				}
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func checkUserID(id int64) error {
	if id <= 0 {
		return models.ErrInvalidUserID
	}
	return nil
}

func checkTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return models.ErrEmptyTitle
	}
	if utf8.RuneCountInString(title) > MaxTitleLength {
		return ErrTitleTooLong
	}
	return nil
}

func checkBody(body string) error {
	if utf8.RuneCountInString(body) > MaxBodyLength {
		return ErrBodyTooLong
	}
	return nil
}
