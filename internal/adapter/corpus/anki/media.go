package anki

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/klauspost/compress/zstd"
	"google.golang.org/protobuf/encoding/protowire"
)

const fileMedia = "media"

var zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}

func isZstd(data []byte) bool {
	return bytes.HasPrefix(data, zstdMagic)
}

// readMedia returns the package media map: stored file name → original name.
// Both the legacy JSON map and the anki21b protobuf list are understood,
// compressed or not. A missing media file yields an empty map.
func readMedia(folder string) (map[string]string, error) {
	data, err := os.ReadFile(filepath.Join(folder, fileMedia))
	if os.IsNotExist(err) {
		return map[string]string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read media map: %w", err)
	}
	return parseMedia(data)
}

func parseMedia(data []byte) (map[string]string, error) {
	if isZstd(data) {
		dec, err := zstd.NewReader(nil)
		if err != nil {
			return nil, fmt.Errorf("zstd reader: %w", err)
		}
		defer dec.Close()
		data, err = dec.DecodeAll(data, nil)
		if err != nil {
			return nil, fmt.Errorf("decompress media map: %w", err)
		}
	}

	if trimmed := bytes.TrimSpace(data); len(trimmed) > 0 && trimmed[0] == '{' {
		m := make(map[string]string)
		if err := json.Unmarshal(trimmed, &m); err != nil {
			return nil, fmt.Errorf("parse media json: %w", err)
		}
		return m, nil
	}
	return parseMediaEntries(data)
}

// parseMediaEntries decodes the MediaEntries message:
//
//	message MediaEntries { repeated MediaEntry entries = 1; }
//	message MediaEntry {
//	  string name = 1; uint32 size = 2; bytes sha1 = 3;
//	  optional uint32 legacy_zip_filename = 255;
//	}
//
// Entry i is stored under legacy_zip_filename when set, else under i.
func parseMediaEntries(data []byte) (map[string]string, error) {
	m := make(map[string]string)
	index := 0
	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return nil, fmt.Errorf("media entries: %w", protowire.ParseError(n))
		}
		data = data[n:]

		if num != 1 || typ != protowire.BytesType {
			n = protowire.ConsumeFieldValue(num, typ, data)
			if n < 0 {
				return nil, fmt.Errorf("media entries: %w", protowire.ParseError(n))
			}
			data = data[n:]
			continue
		}

		msg, n := protowire.ConsumeBytes(data)
		if n < 0 {
			return nil, fmt.Errorf("media entry %d: %w", index, protowire.ParseError(n))
		}
		data = data[n:]

		name, legacy, err := parseMediaEntry(msg)
		if err != nil {
			return nil, fmt.Errorf("media entry %d: %w", index, err)
		}
		stored := strconv.Itoa(index)
		if legacy != nil {
			stored = strconv.FormatUint(*legacy, 10)
		}
		m[stored] = name
		index++
	}
	return m, nil
}

func parseMediaEntry(msg []byte) (name string, legacy *uint64, err error) {
	for len(msg) > 0 {
		num, typ, n := protowire.ConsumeTag(msg)
		if n < 0 {
			return "", nil, protowire.ParseError(n)
		}
		msg = msg[n:]

		switch {
		case num == 1 && typ == protowire.BytesType:
			v, n := protowire.ConsumeBytes(msg)
			if n < 0 {
				return "", nil, protowire.ParseError(n)
			}
			name = string(v)
			msg = msg[n:]
		case num == 255 && typ == protowire.VarintType:
			v, n := protowire.ConsumeVarint(msg)
			if n < 0 {
				return "", nil, protowire.ParseError(n)
			}
			legacy = &v
			msg = msg[n:]
		default:
			n := protowire.ConsumeFieldValue(num, typ, msg)
			if n < 0 {
				return "", nil, protowire.ParseError(n)
			}
			msg = msg[n:]
		}
	}
	return name, legacy, nil
}

// reverse maps original name → stored file name.
func reverse(m map[string]string) map[string]string {
	out := make(map[string]string, len(m))
	for stored, name := range m {
		out[name] = stored
	}
	return out
}
