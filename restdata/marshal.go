// Copyright 2017 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package restdata

import (
	"bytes"
	"io"
	"io/ioutil"
	"mime"
	"reflect"

	"github.com/ugorji/go/codec"
)

// JSONHandle returns the codec handle used for all encoding and
// decoding.  Untyped JSON objects decode as map[string]interface{}
// and integers as int64.
func JSONHandle() *codec.JsonHandle {
	h := &codec.JsonHandle{}
	h.MapType = reflect.TypeOf(map[string]interface{}(nil))
	h.SignedInteger = true
	return h
}

// Encode writes a JSON encoding of in to w.
func Encode(w io.Writer, in interface{}) error {
	return codec.NewEncoder(w, JSONHandle()).Encode(in)
}

// Decode tries to decode a restdata object from a reader, such as an
// HTTP request or response.  out must be a pointer type.  An empty
// body decodes to nothing and leaves out unchanged.
func Decode(contentType string, r io.Reader, out interface{}) error {
	body, err := ioutil.ReadAll(r)
	if err != nil {
		return err
	}
	return DecodeBytes(contentType, body, out)
}

// DecodeBytes is Decode for an already-read body.
func DecodeBytes(contentType string, body []byte, out interface{}) error {
	if len(bytes.TrimSpace(body)) == 0 {
		return nil
	}

	// Some Connect endpoints and proxies omit Content-Type: on
	// JSON bodies, so absent a type we assume JSON.
	if contentType != "" {
		mediaType, _, err := mime.ParseMediaType(contentType)
		if err != nil {
			return err
		}
		switch mediaType {
		case "text/json", JSONMediaType:
		default:
			return ErrUnsupportedMediaType{Type: mediaType}
		}
	}

	decoder := codec.NewDecoderBytes(body, JSONHandle())
	return decoder.Decode(out)
}
