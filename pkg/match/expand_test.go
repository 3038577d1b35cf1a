package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateTemplate(t *testing.T) {
	tests := []struct {
		name       string
		template   string
		groupCount int
		wantErr    bool
		wantGroup  int
	}{
		{
			name:       "valid_single_reference",
			template:   `x\1.dat`,
			groupCount: 1,
		},
		{
			name:       "valid_case_directives",
			template:   `\L\1-\U\2`,
			groupCount: 2,
		},
		{
			name:       "reference_beyond_group_count",
			template:   `\2_new`,
			groupCount: 1,
			wantErr:    true,
			wantGroup:  2,
		},
		{
			name:       "group_zero_is_invalid",
			template:   `\0.txt`,
			groupCount: 1,
			wantErr:    true,
			wantGroup:  0,
		},
		{
			name:       "directive_reference_beyond_group_count",
			template:   `\U\3`,
			groupCount: 2,
			wantErr:    true,
			wantGroup:  3,
		},
		{
			name:       "no_references_at_all",
			template:   `fixed-name.txt`,
			groupCount: 0,
		},
		{
			name:       "escaped_backslash_is_not_a_reference",
			template:   `a\\2`,
			groupCount: 1,
		},
		{
			name:       "multi_digit_reference",
			template:   `\10`,
			groupCount: 10,
		},
		{
			name:       "multi_digit_reference_out_of_range",
			template:   `\12`,
			groupCount: 10,
			wantErr:    true,
			wantGroup:  12,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateTemplate(tt.template, tt.groupCount)
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			var invalidErr *InvalidReplacementError
			require.ErrorAs(t, err, &invalidErr)
			assert.Equal(t, tt.wantGroup, invalidErr.Group)
			assert.Equal(t, tt.template, invalidErr.Template)
		})
	}
}

func TestExpand(t *testing.T) {
	tests := []struct {
		name     string
		template string
		groups   []Group
		want     string
	}{
		{
			name:     "plain_references",
			template: `x\1.dat`,
			groups:   []Group{{Text: "1", Ok: true}},
			want:     "x1.dat",
		},
		{
			name:     "case_directives",
			template: `\L\1-\U\2`,
			groups: []Group{
				{Text: "Abc", Ok: true},
				{Text: "abc", Ok: true},
			},
			want: "abc-ABC",
		},
		{
			name:     "directive_and_plain_for_same_group",
			template: `\U\1_\1`,
			groups:   []Group{{Text: "abc", Ok: true}},
			want:     "ABC_abc",
		},
		{
			name:     "absent_group_expands_empty",
			template: `a\1b\2c`,
			groups: []Group{
				{Text: "X", Ok: true},
				{Ok: false},
			},
			want: "aXbc",
		},
		{
			name:     "repeated_reference",
			template: `\1-\1`,
			groups:   []Group{{Text: "q", Ok: true}},
			want:     "q-q",
		},
		{
			name:     "no_references",
			template: `static.txt`,
			groups:   []Group{{Text: "x", Ok: true}},
			want:     "static.txt",
		},
		{
			name:     "padded_group_value",
			template: `item\1.txt`,
			groups:   []Group{{Text: "007", Ok: true}},
			want:     "item007.txt",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Expand(tt.template, tt.groups)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExpand_Idempotent(t *testing.T) {
	template := `\L\1-\U\2_\3`
	groups := []Group{
		{Text: "Foo", Ok: true},
		{Text: "bar", Ok: true},
		{Text: "007", Ok: true},
	}

	first := Expand(template, groups)
	second := Expand(template, groups)
	assert.Equal(t, first, second)
	assert.Equal(t, "foo-BAR_007", first)
}
