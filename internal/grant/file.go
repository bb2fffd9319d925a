package grant

import (
	"fmt"
	"os"
	"slices"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// FileVersion is the current draft file format version.
const FileVersion = "grantctl/v1"

// draftFile is the on-disk envelope of a Draft.
type draftFile struct {
	Version string `yaml:"version"`
	Draft   `yaml:",inline"`
}

// LoadFile reads a Draft from a YAML file. Fields missing from the file keep
// the NewDraft defaults.
func LoadFile(path string) (Draft, error) {
	// #nosec G304
	data, err := os.ReadFile(path)
	if err != nil {
		return Draft{}, fmt.Errorf("failed to read draft file: %w", err)
	}
	return Parse(data)
}

// Parse decodes a Draft from YAML bytes.
func Parse(data []byte) (Draft, error) {
	if strings.TrimSpace(string(data)) == "" {
		return Draft{}, errEmptyDraftFile
	}

	f := draftFile{Draft: NewDraft()}
	if err := yaml.Unmarshal(data, &f); err != nil {
		return Draft{}, fmt.Errorf("failed to unmarshal draft: %w", err)
	}
	if f.Version != "" && f.Version != FileVersion {
		return Draft{}, fmt.Errorf("%w: %q", errDraftFileVersion, f.Version)
	}
	if err := f.Draft.checkEnums(); err != nil {
		return Draft{}, err
	}
	return f.Draft, nil
}

// Marshal encodes d as a YAML draft file with a descriptive header.
func Marshal(d Draft) ([]byte, error) {
	body, err := yaml.Marshal(draftFile{Version: FileVersion, Draft: d})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal draft: %w", err)
	}

	var sb strings.Builder
	sb.WriteString("# grantctl draft\n")
	fmt.Fprintf(&sb, "# Generated: %s\n", time.Now().UTC().Format(time.RFC3339))
	sb.WriteString("# Submit with: grantctl submit -f <file>\n\n")
	sb.Write(body)
	return []byte(sb.String()), nil
}

// WriteFile writes d to path as YAML.
func WriteFile(d Draft, path string) error {
	data, err := Marshal(d)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write draft file: %w", err)
	}
	return nil
}

// checkEnums rejects enumerated values that are not in the known sets.
// Empty values are left to step validation.
func (d Draft) checkEnums() error {
	if d.Category != "" && !d.Category.Known() {
		return fmt.Errorf("%w: %q", ErrUnknownCategory, d.Category)
	}
	for _, doc := range d.RequiredDocuments {
		if !slices.Contains(DocumentTypes, doc) {
			return fmt.Errorf("%w: %q", ErrUnknownDocument, doc)
		}
	}
	for i, q := range d.CustomQuestions {
		if q.Type != "" && !slices.Contains(AnswerTypes, q.Type) {
			return fmt.Errorf("custom question %d: %w: %q", i+1, ErrUnknownAnswer, q.Type)
		}
	}
	for i, r := range d.ReviewCommittee {
		if r.Role != "" && !slices.Contains(ReviewerRoles, r.Role) {
			return fmt.Errorf("reviewer %d: %w: %q", i+1, ErrUnknownRole, r.Role)
		}
	}
	return nil
}
