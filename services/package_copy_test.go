package services

import (
	"context"
	"testing"

	"travelcms/errors"
)

func TestPackageCopyRejectsInvalidSlug(t *testing.T) {
	s := NewPackageCopyService(PackageCopyServiceOptions{})
	for _, slug := range []string{"Not A Slug/../x?", "UPPER", "trailing-"} {
		pkg, err := s.Copy(context.Background(), 1, "", slug)
		if pkg != nil {
			t.Fatalf("slug %q: expected no package", slug)
		}
		if !errors.HasCode(err, errors.ErrCodeInvalidSlug) {
			t.Fatalf("slug %q: expected invalid slug error, got %v", slug, err)
		}
	}
}
