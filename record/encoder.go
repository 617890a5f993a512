package record

import (
	"bytes"
	"io"

	"github.com/go-logfmt/logfmt"
	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
)

var json = jsoniter.Config{SortMapKeys: true}.Froze()

// Encoder writes records to its destination, one per line.
type Encoder interface {
	Encode(Entry) error
}

// LogFmt encodes records in logfmt format.
//
// See: https://brandur.org/logfmt
//
// A LogFmt is not safe for concurrent use.
type LogFmt struct {
	writer  io.Writer
	buffer  bytes.Buffer
	encoder *logfmt.Encoder
}

// NewLogFmt creates a logfmt encoder writing to writer.
func NewLogFmt(writer io.Writer) *LogFmt {
	l := &LogFmt{writer: writer}
	l.encoder = logfmt.NewEncoder(&l.buffer)
	return l
}

// Encode writes entry as a single logfmt line with keys in sorted order. The
// line is passed to the underlying writer in one Write call.
func (l *LogFmt) Encode(entry Entry) error {
	l.buffer.Reset()
	for _, key := range entry.keys() {
		if err := l.encoder.EncodeKeyval(key, entry[key]); err != nil {
			return errors.Wrapf(err, "unable to encode %q", key)
		}
	}
	if err := l.encoder.EndRecord(); err != nil {
		return err
	}
	_, err := l.writer.Write(l.buffer.Bytes())
	return err
}

// JSON encodes records as newline delimited JSON objects.
type JSON struct {
	writer io.Writer
}

// NewJSON creates a JSON encoder writing to writer.
func NewJSON(writer io.Writer) *JSON {
	return &JSON{writer: writer}
}

// Encode writes entry as a single JSON line.
func (j *JSON) Encode(entry Entry) error {
	bytes, err := json.Marshal(entry)
	if err != nil {
		return errors.Wrap(err, "unable to marshal record")
	}
	// Consumers read records line by line so we need to add a newline after
	// each generated JSON entry
	bytes = append(bytes, '\n')
	_, err = j.writer.Write(bytes)
	return err
}

// NewEncoder returns an encoder for the named format: "logfmt" or "json".
func NewEncoder(format string, writer io.Writer) (Encoder, error) {
	switch format {
	case "", "logfmt":
		return NewLogFmt(writer), nil
	case "json":
		return NewJSON(writer), nil
	default:
		return nil, errors.Errorf("unsupported record format: %s", format)
	}
}
