package sink

import (
	"bufio"
	"io"
	"sync"

	"github.com/go-sif/ola"
	"github.com/pierrec/lz4/v4"
)

// StreamConf configures a StreamSink
type StreamConf struct {
	Name     string // The aggregator name written with each record. Defaults to no name.
	Compress bool   // If true, the stream is lz4-compressed. Defaults to false.
}

// StreamSink writes each Estimate as a line of JSON to an io.Writer
type StreamSink struct {
	conf   *StreamConf
	lock   sync.Mutex
	buf    *bufio.Writer
	lz     *lz4.Writer
	step   int
	closed bool
}

// CreateStreamSink returns a new StreamSink writing to w. Close must be called to flush
// buffered (and compressed) output; it does not close w.
func CreateStreamSink(w io.Writer, conf *StreamConf) *StreamSink {
	if conf == nil {
		conf = &StreamConf{}
	}
	s := &StreamSink{conf: conf}
	if conf.Compress {
		s.lz = lz4.NewWriter(w)
		s.buf = bufio.NewWriter(s.lz)
	} else {
		s.buf = bufio.NewWriter(w)
	}
	return s
}

// Update writes an Estimate as a JSON line
func (s *StreamSink) Update(estimate ola.Estimate) error {
	s.lock.Lock()
	defer s.lock.Unlock()
	if s.closed {
		return io.ErrClosedPipe
	}
	s.step++
	line, err := encodeRecord(s.conf.Name, s.step, estimate)
	if err != nil {
		return err
	}
	if _, err = s.buf.Write(line); err != nil {
		return err
	}
	if err = s.buf.WriteByte('\n'); err != nil {
		return err
	}
	// uncompressed streams are flushed per line so that observers see every Estimate promptly
	if s.lz == nil {
		return s.buf.Flush()
	}
	return nil
}

// Close flushes any buffered output
func (s *StreamSink) Close() error {
	s.lock.Lock()
	defer s.lock.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true
	if err := s.buf.Flush(); err != nil {
		return err
	}
	if s.lz != nil {
		return s.lz.Close()
	}
	return nil
}

// ReadStream decodes the Records written by a StreamSink. Set compressed if the stream was written with Compress.
func ReadStream(r io.Reader, compressed bool) ([]*Record, error) {
	if compressed {
		r = lz4.NewReader(r)
	}
	return decodeRecords(r)
}
