package record

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var value = time.Date(2016, 9, 26, 10, 30, 45, 0, time.UTC)

func TestIfEncodesRecords(t *testing.T) {
	testCases := []struct {
		format   string
		expected string
	}{
		{"logfmt", "command=future run_id=id value=2016-09-26T10:30:45Z\ncommand=future run_id=id value=2016-09-26T10:30:45Z\n"},
		{"json", `{"command":"future","run_id":"id","value":"2016-09-26T10:30:45Z"}` + "\n" +
			`{"command":"future","run_id":"id","value":"2016-09-26T10:30:45Z"}` + "\n"},
	}
	for _, tc := range testCases {
		t.Run(tc.format, func(t *testing.T) {
			buffer := &bytes.Buffer{}
			encoder, err := NewEncoder(tc.format, buffer)
			require.NoError(t, err)

			entry := Entry{"command": "future", "run_id": "id", "value": value.Format(time.RFC3339)}
			require.NoError(t, encoder.Encode(entry))
			require.NoError(t, encoder.Encode(entry))

			assert.Equal(t, tc.expected, buffer.String())
		})
	}
}

type countingWriter struct {
	writes int
}

func (w *countingWriter) Write(p []byte) (int, error) {
	w.writes++
	return len(p), nil
}

func TestIfEachRecordIsWrittenOnce(t *testing.T) {
	for _, format := range []string{"logfmt", "json"} {
		t.Run(format, func(t *testing.T) {
			writer := &countingWriter{}
			encoder, err := NewEncoder(format, writer)
			require.NoError(t, err)

			for i := 0; i < 3; i++ {
				require.NoError(t, encoder.Encode(Entry{"command": "element", "run_id": "id", "value": "Gold"}))
			}

			assert.Equal(t, 3, writer.writes)
		})
	}
}

func TestIfFailsOnUnknownFormat(t *testing.T) {
	encoder, err := NewEncoder("xml", &bytes.Buffer{})

	assert.Nil(t, encoder)
	assert.EqualError(t, err, "unsupported record format: xml")
}

func TestIfStaticDataExtenderDoesNotModifyOriginalEntry(t *testing.T) {
	entry := Entry{"value": "Gold", "run_id": "old"}

	extended := Extend(entry, StaticDataExtender{Data: map[string]interface{}{"run_id": "new"}})

	assert.Equal(t, Entry{"value": "Gold", "run_id": "new"}, extended)
	assert.Equal(t, "old", entry["run_id"])
}
