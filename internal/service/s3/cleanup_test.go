package s3

import (
	"context"
	"sync"
	"testing"

	awssdk "github.com/aws/aws-sdk-go-v2/aws"
	awss3 "github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeVersionedStore はバージョン付きオブジェクトを持つバケットを再現する
type fakeVersionedStore struct {
	*fakeBucketStore

	mu      sync.Mutex
	objects map[string][]s3types.ObjectIdentifier // バケット名 → 残存オブジェクト
	deleted [][]s3types.ObjectIdentifier          // DeleteObjectsで渡されたバッチの記録
}

func (s *fakeVersionedStore) ListObjectVersions(ctx context.Context, params *awss3.ListObjectVersionsInput, optFns ...func(*awss3.Options)) (*awss3.ListObjectVersionsOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := &awss3.ListObjectVersionsOutput{IsTruncated: awssdk.Bool(false)}
	for _, obj := range s.objects[awssdk.ToString(params.Bucket)] {
		out.Versions = append(out.Versions, s3types.ObjectVersion{
			Key:       obj.Key,
			VersionId: obj.VersionId,
		})
	}
	return out, nil
}

func (s *fakeVersionedStore) DeleteObjects(ctx context.Context, params *awss3.DeleteObjectsInput, optFns ...func(*awss3.Options)) (*awss3.DeleteObjectsOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.deleted = append(s.deleted, params.Delete.Objects)
	s.objects[awssdk.ToString(params.Bucket)] = nil
	return &awss3.DeleteObjectsOutput{}, nil
}

func TestCleanupBuckets(t *testing.T) {
	store := &fakeVersionedStore{
		fakeBucketStore: newFakeBucketStore("sth-old-1", "sth-old-2"),
		objects: map[string][]s3types.ObjectIdentifier{
			"sth-old-1": {
				{Key: awssdk.String("data.txt"), VersionId: awssdk.String("v1")},
				{Key: awssdk.String("data.txt"), VersionId: awssdk.String("v2")},
			},
		},
	}

	manager := NewBucketManager(store, "ap-northeast-1", newTestLogger())
	result := manager.CleanupBuckets(context.Background(), []string{"sth-old-1", "sth-old-2"})

	assert.ElementsMatch(t, []string{"sth-old-1", "sth-old-2"}, result.Deleted)
	assert.Empty(t, result.Failed)
	assert.Equal(t, 2, result.TotalCount())

	// 中身のあるバケットはオブジェクト削除を経てから削除される
	require.Len(t, store.deleted, 1)
	assert.Len(t, store.deleted[0], 2)
	assert.False(t, manager.BucketExists(context.Background(), "sth-old-1"))
	assert.False(t, manager.BucketExists(context.Background(), "sth-old-2"))
}

func TestCleanupBucketsEmptyList(t *testing.T) {
	store := newFakeBucketStore()

	manager := NewBucketManager(store, "ap-northeast-1", newTestLogger())
	result := manager.CleanupBuckets(context.Background(), []string{})

	assert.Empty(t, result.Deleted)
	assert.Empty(t, result.Failed)
}

func TestBucketsByFilter(t *testing.T) {
	store := newFakeBucketStore("sth-dev-logs", "sth-prod-logs", "other-bucket")

	manager := NewBucketManager(store, "ap-northeast-1", newTestLogger())

	// 部分一致
	names, err := manager.BucketsByFilter(context.Background(), "logs")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"sth-dev-logs", "sth-prod-logs"}, names)

	// ワイルドカード
	names, err = manager.BucketsByFilter(context.Background(), "sth-*-logs")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"sth-dev-logs", "sth-prod-logs"}, names)
}
