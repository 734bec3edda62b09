package kinshipmap

import (
	"bufio"
	"bytes"
	"compress/bzip2"
	"compress/gzip"
	"compress/zlib"
	"errors"
	"io"

	"github.com/krolaw/zipstream"
	"github.com/xi2/xz"
)

type DataType byte

const (
	DataTypeNoCompression DataType = iota
	DataTypeGzip
	DataTypeZip
	DataTypeXZ
	DataTypeZlib
	DataTypeBZip2

	// DataTypeUnixCompress is the LZW format written by compress(1), usually
	// with a .Z suffix. It is recognized so that it can be rejected clearly.
	DataTypeUnixCompress
)

var byteCodeSigs = map[DataType][]byte{
	DataTypeGzip:         {0x1f, 0x8b, 0x08},
	DataTypeZip:          {0x50, 0x4b, 0x03, 0x04},
	DataTypeXZ:           {0xfd, 0x37, 0x7a, 0x58, 0x5a, 0x00},
	DataTypeBZip2:        {0x42, 0x5a, 0x68},
	DataTypeUnixCompress: {0x1f, 0x9d},
}

// ErrUnsupportedCompression is returned for compressed inputs that can be
// recognized but not decoded.
var ErrUnsupportedCompression = errors.New("unix compress (.Z) files are not supported; recompress with gzip")

// DetectDataType compares the leading bytes of a stream against a set of known
// compression signatures. Byte code signatures from
// https://stackoverflow.com/a/19127748/199475
func DetectDataType(head []byte) DataType {
	for dt, sig := range byteCodeSigs {
		if bytes.HasPrefix(head, sig) {
			return dt
		}
	}

	if isZlibHeader(head) {
		return DataTypeZlib
	}

	return DataTypeNoCompression
}

// isZlibHeader checks the two-byte zlib header from RFC 1950: deflate with a
// window of at most 32K, no preset dictionary, and a valid FCHECK.
func isZlibHeader(head []byte) bool {
	if len(head) < 2 {
		return false
	}

	cmf, flg := head[0], head[1]
	if cmf&0x0f != 8 || cmf>>4 > 7 || flg&0x20 != 0 {
		return false
	}

	return (uint16(cmf)<<8|uint16(flg))%31 == 0
}

// maybeDecompress peeks at the start of rc and, if it carries a known
// compression signature, wraps it in the matching decoder. Closing the
// returned ReadCloser closes rc.
func maybeDecompress(rc io.ReadCloser) (io.ReadCloser, error) {
	br := bufio.NewReader(rc)

	// A short (or empty) file is fine; it just can't be compressed.
	head, err := br.Peek(6)
	if err != nil && err != io.EOF && err != bufio.ErrBufferFull {
		return nil, err
	}

	var r io.Reader
	switch DetectDataType(head) {
	case DataTypeGzip:
		r, err = gzip.NewReader(br)
	case DataTypeZip:
		zr := zipstream.NewReader(br)

		// Position the stream at the first file in the archive
		_, err = zr.Next()
		r = zr
	case DataTypeBZip2:
		r = bzip2.NewReader(br)
	case DataTypeXZ:
		r, err = xz.NewReader(br, 0)
	case DataTypeZlib:
		r, err = zlib.NewReader(br)
	case DataTypeUnixCompress:
		err = ErrUnsupportedCompression
	default:
		r = br
	}
	if err != nil {
		return nil, err
	}

	return &readCloser{Reader: r, closer: rc}, nil
}

// readCloser pairs a (possibly decompressing) reader with the Close of the
// underlying source.
type readCloser struct {
	io.Reader
	closer io.Closer
}

func (c *readCloser) Close() error {
	return c.closer.Close()
}
