//go:build unit

package request

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterValidators(t *testing.T) {
	t.Run("gin engine accepts cardlast4 and repeated calls agree", func(t *testing.T) {
		require.NoError(t, RegisterValidators())
		require.NoError(t, RegisterValidators())
	})

	t.Run("foreign engine is reported instead of skipped", func(t *testing.T) {
		err := registerValidators(struct{}{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "struct {}")
	})

	t.Run("registered tag validates the card tail", func(t *testing.T) {
		v := validator.New()
		v.SetTagName("binding")
		require.NoError(t, registerValidators(v))

		valid := CustomerRequest{Name: "Jack Sparrow", Email: "jack@blackpearl.example", CardLast4: "4242"}
		assert.NoError(t, v.Struct(valid))

		for _, tail := range []string{"42a2", "424", "42424"} {
			invalid := valid
			invalid.CardLast4 = tail
			assert.Error(t, v.Struct(invalid), tail)
		}
	})
}
