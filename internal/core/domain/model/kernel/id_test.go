package kernel_test

import (
	"encoding/json"
	"testing"

	"dashboard/internal/core/domain/model/kernel"
	"dashboard/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewID(t *testing.T) {
	t.Run("accepts positive values", func(t *testing.T) {
		id, err := kernel.NewID(7)

		require.NoError(t, err)
		assert.Equal(t, int64(7), id.Int64())
		assert.Equal(t, "7", id.String())
		require.NoError(t, id.Validate())
	})

	t.Run("rejects zero and negatives", func(t *testing.T) {
		for _, v := range []int64{0, -1, -100} {
			_, err := kernel.NewID(v)
			require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		}
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var id kernel.ID
		require.ErrorIs(t, id.Validate(), errs.ErrValueIsRequired)
	})
}

func TestParseID(t *testing.T) {
	testCases := []struct {
		input   string
		want    kernel.ID
		wantErr bool
	}{
		{input: "3", want: 3},
		{input: " 42 ", want: 42},
		{input: "0", wantErr: true},
		{input: "-3", wantErr: true},
		{input: "abc", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			got, err := kernel.ParseID(tc.input)
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestID_JSON(t *testing.T) {
	t.Run("decodes numbers and strings", func(t *testing.T) {
		var payload struct {
			A kernel.ID `json:"a"`
			B kernel.ID `json:"b"`
		}
		require.NoError(t, json.Unmarshal([]byte(`{"a": 9, "b": "3"}`), &payload))

		assert.Equal(t, kernel.ID(9), payload.A)
		assert.Equal(t, kernel.ID(3), payload.B)
	})

	t.Run("rejects non positive values", func(t *testing.T) {
		var id kernel.ID
		require.Error(t, json.Unmarshal([]byte(`0`), &id))
		require.Error(t, json.Unmarshal([]byte(`"x"`), &id))
	})

	t.Run("encodes as number", func(t *testing.T) {
		data, err := json.Marshal(map[string]kernel.ID{"id": 12})

		require.NoError(t, err)
		assert.JSONEq(t, `{"id": 12}`, string(data))
	})
}
