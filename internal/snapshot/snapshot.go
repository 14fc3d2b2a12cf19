// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package snapshot

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"
	"time"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	s3v2 "github.com/aws/aws-sdk-go-v2/service/s3"

	awsx "github.com/ns1ctl/ns1ctl/internal/aws"
	"github.com/ns1ctl/ns1ctl/internal/config"
	"github.com/ns1ctl/ns1ctl/internal/log"
)

// stampLayout sorts lexically in chronological order.
const stampLayout = "20060102-150405.000000000"

// Store persists a pre-change copy of a remote resource. Save returns the
// location the snapshot was written to.
type Store interface {
	Save(ctx context.Context, kind, name string, obj map[string]interface{}) (string, error)
}

// LocalStore writes snapshots under dir, one subdirectory per kind.
type LocalStore struct {
	dir string
}

// NewLocalStore returns a store rooted at dir.
func NewLocalStore(dir string) *LocalStore {
	return &LocalStore{dir: dir}
}

// Save writes obj as indented JSON to <dir>/<kind>/<stamp>-<name>.json.
func (s *LocalStore) Save(ctx context.Context, kind, name string, obj map[string]interface{}) (string, error) {
	data, err := json.MarshalIndent(obj, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode snapshot: %w", err)
	}

	dir := filepath.Join(s.dir, kind)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create snapshot dir: %w", err)
	}

	file := filepath.Join(dir, snapshotFile(name))
	if err := os.WriteFile(file, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write snapshot: %w", err)
	}

	log.Debugf("snapshot written: %s", file)
	return file, nil
}

// List returns snapshot filenames for a kind, newest first.
func (s *LocalStore) List(kind string) ([]string, error) {
	entries, err := os.ReadDir(filepath.Join(s.dir, kind))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		names = append(names, e.Name())
	}

	sort.Sort(sort.Reverse(sort.StringSlice(names)))
	return names, nil
}

// s3API is the subset of the S3 client the store needs.
type s3API interface {
	PutObject(ctx context.Context, params *s3v2.PutObjectInput, optFns ...func(*s3v2.Options)) (*s3v2.PutObjectOutput, error)
}

// S3Store pushes snapshots to a bucket under a key prefix.
type S3Store struct {
	api    s3API
	bucket string
	prefix string
}

// NewS3Store returns a store writing to bucket under prefix.
func NewS3Store(api s3API, bucket, prefix string) *S3Store {
	return &S3Store{api: api, bucket: bucket, prefix: prefix}
}

// Save puts obj as JSON at <prefix>/<kind>/<stamp>-<name>.json.
func (s *S3Store) Save(ctx context.Context, kind, name string, obj map[string]interface{}) (string, error) {
	data, err := json.MarshalIndent(obj, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode snapshot: %w", err)
	}

	key := path.Join(s.prefix, kind, snapshotFile(name))
	_, err = s.api.PutObject(ctx, &s3v2.PutObjectInput{
		Bucket:      awsv2.String(s.bucket),
		Key:         awsv2.String(key),
		Body:        bytes.NewReader(data),
		ContentType: awsv2.String("application/json"),
	})
	if err != nil {
		return "", fmt.Errorf("failed to put snapshot to s3://%s/%s: %w", s.bucket, key, err)
	}

	location := fmt.Sprintf("s3://%s/%s", s.bucket, key)
	log.Debugf("snapshot written: %s", location)
	return location, nil
}

// MultiStore fans a snapshot out to every member. The first location is
// returned; any member failure fails the save.
type MultiStore []Store

func (m MultiStore) Save(ctx context.Context, kind, name string, obj map[string]interface{}) (string, error) {
	var first string
	for _, s := range m {
		loc, err := s.Save(ctx, kind, name, obj)
		if err != nil {
			return "", err
		}
		if first == "" {
			first = loc
		}
	}
	return first, nil
}

// FromConfig builds the snapshot store described by the config file.
// Local storage defaults to <user cache dir>/ns1ctl/snapshots and can be
// overridden with snapshot.local.dir. When snapshot.s3.bucket is set, an
// S3 store is added using snapshot.s3.region/profile/prefix.
func FromConfig(ctx context.Context) (Store, error) {
	dir, err := config.GetString("snapshot.local.dir", "")
	if err != nil || dir == "" {
		cacheDir, cacheErr := os.UserCacheDir()
		if cacheErr != nil {
			return nil, fmt.Errorf("failed to locate snapshot dir: %w", cacheErr)
		}
		dir = filepath.Join(cacheDir, "ns1ctl", "snapshots")
	}

	stores := MultiStore{NewLocalStore(dir)}

	bucket, _ := config.GetString("snapshot.s3.bucket", "")
	if bucket != "" {
		var cfgOpts []awsx.Option
		if region, _ := config.GetString("snapshot.s3.region", ""); region != "" {
			cfgOpts = append(cfgOpts, awsx.WithRegion(region))
		}
		if profile, _ := config.GetString("snapshot.s3.profile", ""); profile != "" {
			cfgOpts = append(cfgOpts, awsx.WithProfile(profile))
		}

		cfg, err := awsx.LoadAWSConfig(ctx, cfgOpts...)
		if err != nil {
			return nil, fmt.Errorf("failed to load AWS config for snapshots: %w", err)
		}

		prefix, _ := config.GetString("snapshot.s3.prefix", "ns1ctl-snapshots")
		stores = append(stores, NewS3Store(awsx.NewS3(cfg), bucket, prefix))
	}

	return stores, nil
}

// snapshotFile builds a sortable filename for a snapshot of name.
func snapshotFile(name string) string {
	safe := strings.NewReplacer("/", "_", string(os.PathSeparator), "_", " ", "_").Replace(name)
	return fmt.Sprintf("%s-%s.json", time.Now().UTC().Format(stampLayout), safe)
}
