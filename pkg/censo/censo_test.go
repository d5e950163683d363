package censo_test

import (
	"context"
	"strings"
	"testing"

	"github.com/oyurisousa/validador-censo-sub000/internal/censotest"
	"github.com/oyurisousa/validador-censo-sub000/pkg/censo"
	"github.com/oyurisousa/validador-censo-sub000/pkg/censo/crossref"
	censoErrors "github.com/oyurisousa/validador-censo-sub000/pkg/censo/errors"
	"github.com/oyurisousa/validador-censo-sub000/pkg/censo/layout"
	"github.com/oyurisousa/validador-censo-sub000/pkg/reference"
)

func TestValidateFile(t *testing.T) {
	content := []byte(censotest.File(censotest.PhaseOne()...))
	res := censo.ValidateFile(context.Background(), content, "escola.txt", "")
	if !res.IsValid {
		t.Fatalf("errors = %v", res.Errors)
	}
	if res.FileMetadata.Phase != layout.PhaseInitial {
		t.Errorf("Phase = %q", res.FileMetadata.Phase)
	}
}

func TestValidateRecords_MissingTerminator(t *testing.T) {
	res := censo.ValidateRecords(context.Background(), censotest.PhaseOne(), "escola.txt", "")
	if res.IsValid || len(res.Errors) != 1 || res.Errors[0].RuleName != censoErrors.RuleFileEndRecord {
		t.Fatalf("errors = %v", res.Errors)
	}
}

func TestOptions(t *testing.T) {
	lines := append(censotest.PhaseOne(), "99")

	tests := []struct {
		name string
		opts []censo.Option
		want string
	}{
		{
			name: "existing director bond",
			opts: []censo.Option{censo.WithExistingBonds(crossref.ManagerBonds, censotest.DirectorCode)},
			want: censoErrors.RuleDuplicateManagerBond,
		},
		{
			name: "reference tables",
			// The default store has no municipality table loaded, so only
			// a store with an explicit, unrelated municipality list rejects
			// the fixture's code.
			opts: []censo.Option{censo.WithLookup(municipalities("5300108"))},
			want: censoErrors.RuleInvalidReferenceCode,
		},
		{
			name: "size limit",
			opts: []censo.Option{censo.WithMaxFileSize(16)},
			want: censoErrors.RuleFileTooLarge,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := append(tt.opts, censo.WithWorkers(2))
			content := []byte(strings.Join(lines, "\n"))
			res := censo.ValidateFile(context.Background(), content, "escola.txt", "", opts...)
			list := &censoErrors.ErrorList{Errors: res.Errors}
			if !list.HasRule(tt.want) {
				t.Errorf("rules = %v, want %s", res.Errors, tt.want)
			}
		})
	}
}

func municipalities(codes ...string) reference.Lookup {
	s := reference.NewDefaultMemoryStore()
	s.Load(reference.Municipality, codes)
	return s
}
