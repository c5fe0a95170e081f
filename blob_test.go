package hexfmt

import (
	"database/sql"
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func TestBlob_String(t *testing.T) {
	assert.Equal(t, "deadbeef", Blob{0xDE, 0xAD, 0xBE, 0xEF}.String())
	assert.Equal(t, "", Blob(nil).String())
}

func TestBlob_JSON(t *testing.T) {
	tests := []struct {
		name string
		blob Blob
		want string
	}{
		{"empty", Blob{}, `""`},
		{"single", Blob{0x0F}, `"0f"`},
		{"payload", Blob{0xDE, 0xAD, 0xBE, 0xEF}, `"deadbeef"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.blob)
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(data))

			var back Blob
			require.NoError(t, json.Unmarshal(data, &back))
			if diff := cmp.Diff([]byte(tt.blob), []byte(back)); diff != "" {
				t.Errorf("JSON round trip mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestBlob_UnmarshalJSON(t *testing.T) {
	var b Blob
	require.NoError(t, json.Unmarshal([]byte(`"DEADbeef"`), &b))
	assert.Equal(t, Blob{0xDE, 0xAD, 0xBE, 0xEF}, b)

	assert.Error(t, json.Unmarshal([]byte(`42`), &b))
	assert.Error(t, json.Unmarshal([]byte(`"zz"`), &b))
}

func TestBlob_Scan(t *testing.T) {
	tests := []struct {
		name    string
		input   interface{}
		want    Blob
		wantErr bool
	}{
		{"nil", nil, nil, false},
		{"bytes", []byte{1, 2, 3}, Blob{1, 2, 3}, false},
		{"hex string", "deadbeef", Blob{0xDE, 0xAD, 0xBE, 0xEF}, false},
		{"upper hex string", "DEAD", Blob{0xDE, 0xAD}, false},
		{"invalid hex string", "xyz", nil, true},
		{"unsupported type", 3.14, nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var b Blob
			err := b.Scan(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, b)
		})
	}
}

func TestBlob_Scan_CopiesInput(t *testing.T) {
	src := []byte{1, 2, 3}
	var b Blob
	require.NoError(t, b.Scan(src))

	src[0] = 0xFF
	assert.Equal(t, Blob{1, 2, 3}, b)
}

func TestBlob_SQLiteRoundTrip(t *testing.T) {
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	defer db.Close()

	_, err = db.Exec(`CREATE TABLE payloads (id INTEGER PRIMARY KEY, body BLOB)`)
	require.NoError(t, err)

	payloads := []Blob{
		{0xDE, 0xAD, 0xBE, 0xEF},
		{0x00},
		{},
	}

	for i, p := range payloads {
		_, err = db.Exec(`INSERT INTO payloads (id, body) VALUES (?, ?)`, i, p)
		require.NoError(t, err)
	}

	for i, p := range payloads {
		var got Blob
		err = db.QueryRow(`SELECT body FROM payloads WHERE id = ?`, i).Scan(&got)
		require.NoError(t, err)
		if diff := cmp.Diff([]byte(p), []byte(got), cmpopts.EquateEmpty()); diff != "" {
			t.Errorf("sqlite round trip mismatch for id %d (-want +got):\n%s", i, diff)
		}
	}
}
