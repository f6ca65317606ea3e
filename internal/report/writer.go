package report

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"time"
)

// ClusterFilename is where the cluster report is written on every run.
const ClusterFilename = "cce_clusters_detailed_info.json"

// timestampLayout renders as YYYYMMDD_HHMMSS.
const timestampLayout = "20060102_150405"

// InstanceFilename names an instance report. Unless raw is set the access key
// is masked down to its last four characters.
func InstanceFilename(accessKey, projectID, region string, at time.Time, raw bool) string {
	ak := accessKey
	if !raw {
		ak = MaskAccessKey(accessKey)
	}
	return fmt.Sprintf("ecs_summary_%s_%s_%s_%s.json", ak, projectID, region, at.Format(timestampLayout))
}

// keyMask replaces the hidden part of an access key. '*' is not allowed in
// Windows file names.
const keyMask = "xxxx"

// MaskAccessKey keeps the last four characters of key.
func MaskAccessKey(key string) string {
	if len(key) <= 4 {
		return keyMask
	}
	return keyMask + key[len(key)-4:]
}

// Encode renders records as indented JSON. A nil slice encodes as [].
func Encode(records any) ([]byte, error) {
	if v := reflect.ValueOf(records); v.Kind() == reflect.Slice && v.IsNil() {
		records = []any{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(records); err != nil {
		return nil, fmt.Errorf("encoding report: %w", err)
	}
	return buf.Bytes(), nil
}

// WriteJSON encodes records and writes them to path in a single write. Nothing
// is touched on disk if encoding fails.
func WriteJSON(path string, records any) (err error) {
	data, err := Encode(records)
	if err != nil {
		return err
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing %s: %w", path, cerr)
		}
	}()

	if _, err := f.Write(data); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
