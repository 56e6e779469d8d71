package validation

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name     string   `validate:"valid_name"`
	Password string   `validate:"strong_password"`
	Skills   []string `validate:"skill_list"`
}

func newValidator(t *testing.T) *validator.Validate {
	t.Helper()
	v := validator.New()
	RegisterValidators(v)
	return v
}

func TestValidName(t *testing.T) {
	v := newValidator(t)

	valid := []string{"Alice", "Mary-Jane", "O'Brien", "José", ""}
	for _, name := range valid {
		err := v.Var(name, "valid_name")
		assert.NoError(t, err, "name %q should be valid", name)
	}

	invalid := []string{"<script>", "alice@example.com", "Bob;DROP TABLE"}
	for _, name := range invalid {
		err := v.Var(name, "valid_name")
		assert.Error(t, err, "name %q should be invalid", name)
	}
}

func TestStrongPassword(t *testing.T) {
	v := newValidator(t)

	assert.NoError(t, v.Var("password123", "strong_password"))
	assert.Error(t, v.Var("short1", "strong_password"))
	assert.Error(t, v.Var("onlyletters", "strong_password"))
	assert.Error(t, v.Var("12345678", "strong_password"))
}

func TestSkillList(t *testing.T) {
	v := newValidator(t)

	require.NoError(t, v.Var([]string{"Go", "PostgreSQL"}, "skill_list"))
	assert.NoError(t, v.Var([]string{}, "skill_list"))
	assert.Error(t, v.Var([]string{"Go", ""}, "skill_list"))
}
