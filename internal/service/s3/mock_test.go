package s3

import (
	"context"
	"sync"

	awssdk "github.com/aws/aws-sdk-go-v2/aws"
	awss3 "github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
	"github.com/sirupsen/logrus"
)

func newTestLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	return logger
}

type mockS3API struct {
	createBucketFunc       func(ctx context.Context, params *awss3.CreateBucketInput, optFns ...func(*awss3.Options)) (*awss3.CreateBucketOutput, error)
	deleteBucketFunc       func(ctx context.Context, params *awss3.DeleteBucketInput, optFns ...func(*awss3.Options)) (*awss3.DeleteBucketOutput, error)
	headBucketFunc         func(ctx context.Context, params *awss3.HeadBucketInput, optFns ...func(*awss3.Options)) (*awss3.HeadBucketOutput, error)
	listBucketsFunc        func(ctx context.Context, params *awss3.ListBucketsInput, optFns ...func(*awss3.Options)) (*awss3.ListBucketsOutput, error)
	getBucketAclFunc       func(ctx context.Context, params *awss3.GetBucketAclInput, optFns ...func(*awss3.Options)) (*awss3.GetBucketAclOutput, error)
	putBucketPolicyFunc    func(ctx context.Context, params *awss3.PutBucketPolicyInput, optFns ...func(*awss3.Options)) (*awss3.PutBucketPolicyOutput, error)
	getBucketPolicyFunc    func(ctx context.Context, params *awss3.GetBucketPolicyInput, optFns ...func(*awss3.Options)) (*awss3.GetBucketPolicyOutput, error)
	deleteBucketPolicyFunc func(ctx context.Context, params *awss3.DeleteBucketPolicyInput, optFns ...func(*awss3.Options)) (*awss3.DeleteBucketPolicyOutput, error)
	listObjectVersionsFunc func(ctx context.Context, params *awss3.ListObjectVersionsInput, optFns ...func(*awss3.Options)) (*awss3.ListObjectVersionsOutput, error)
	deleteObjectsFunc      func(ctx context.Context, params *awss3.DeleteObjectsInput, optFns ...func(*awss3.Options)) (*awss3.DeleteObjectsOutput, error)
}

func (m *mockS3API) CreateBucket(ctx context.Context, params *awss3.CreateBucketInput, optFns ...func(*awss3.Options)) (*awss3.CreateBucketOutput, error) {
	return m.createBucketFunc(ctx, params, optFns...)
}

func (m *mockS3API) DeleteBucket(ctx context.Context, params *awss3.DeleteBucketInput, optFns ...func(*awss3.Options)) (*awss3.DeleteBucketOutput, error) {
	return m.deleteBucketFunc(ctx, params, optFns...)
}

func (m *mockS3API) HeadBucket(ctx context.Context, params *awss3.HeadBucketInput, optFns ...func(*awss3.Options)) (*awss3.HeadBucketOutput, error) {
	return m.headBucketFunc(ctx, params, optFns...)
}

func (m *mockS3API) ListBuckets(ctx context.Context, params *awss3.ListBucketsInput, optFns ...func(*awss3.Options)) (*awss3.ListBucketsOutput, error) {
	return m.listBucketsFunc(ctx, params, optFns...)
}

func (m *mockS3API) GetBucketAcl(ctx context.Context, params *awss3.GetBucketAclInput, optFns ...func(*awss3.Options)) (*awss3.GetBucketAclOutput, error) {
	return m.getBucketAclFunc(ctx, params, optFns...)
}

func (m *mockS3API) PutBucketPolicy(ctx context.Context, params *awss3.PutBucketPolicyInput, optFns ...func(*awss3.Options)) (*awss3.PutBucketPolicyOutput, error) {
	return m.putBucketPolicyFunc(ctx, params, optFns...)
}

func (m *mockS3API) GetBucketPolicy(ctx context.Context, params *awss3.GetBucketPolicyInput, optFns ...func(*awss3.Options)) (*awss3.GetBucketPolicyOutput, error) {
	return m.getBucketPolicyFunc(ctx, params, optFns...)
}

func (m *mockS3API) DeleteBucketPolicy(ctx context.Context, params *awss3.DeleteBucketPolicyInput, optFns ...func(*awss3.Options)) (*awss3.DeleteBucketPolicyOutput, error) {
	return m.deleteBucketPolicyFunc(ctx, params, optFns...)
}

func (m *mockS3API) ListObjectVersions(ctx context.Context, params *awss3.ListObjectVersionsInput, optFns ...func(*awss3.Options)) (*awss3.ListObjectVersionsOutput, error) {
	return m.listObjectVersionsFunc(ctx, params, optFns...)
}

func (m *mockS3API) DeleteObjects(ctx context.Context, params *awss3.DeleteObjectsInput, optFns ...func(*awss3.Options)) (*awss3.DeleteObjectsOutput, error) {
	return m.deleteObjectsFunc(ctx, params, optFns...)
}

// fakeBucketStore はバケットの存在とポリシーをメモリ上で再現する
// 存在しないバケットへのHeadBucketはNotFoundを返す（待機Waiterが依存する挙動）
type fakeBucketStore struct {
	mu       sync.Mutex
	buckets  map[string]bool
	policies map[string]string

	lastCreateInput *awss3.CreateBucketInput
}

func newFakeBucketStore(names ...string) *fakeBucketStore {
	s := &fakeBucketStore{
		buckets:  map[string]bool{},
		policies: map[string]string{},
	}
	for _, name := range names {
		s.buckets[name] = true
	}
	return s
}

func (s *fakeBucketStore) CreateBucket(ctx context.Context, params *awss3.CreateBucketInput, optFns ...func(*awss3.Options)) (*awss3.CreateBucketOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastCreateInput = params
	s.buckets[awssdk.ToString(params.Bucket)] = true
	return &awss3.CreateBucketOutput{}, nil
}

func (s *fakeBucketStore) DeleteBucket(ctx context.Context, params *awss3.DeleteBucketInput, optFns ...func(*awss3.Options)) (*awss3.DeleteBucketOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	name := awssdk.ToString(params.Bucket)
	if !s.buckets[name] {
		return nil, &smithy.GenericAPIError{Code: "NoSuchBucket", Message: "The specified bucket does not exist"}
	}
	delete(s.buckets, name)
	delete(s.policies, name)
	return &awss3.DeleteBucketOutput{}, nil
}

func (s *fakeBucketStore) HeadBucket(ctx context.Context, params *awss3.HeadBucketInput, optFns ...func(*awss3.Options)) (*awss3.HeadBucketOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.buckets[awssdk.ToString(params.Bucket)] {
		// NotExists待ちWaiterは具象型*types.NotFoundで判定する
		return nil, &s3types.NotFound{}
	}
	return &awss3.HeadBucketOutput{}, nil
}

func (s *fakeBucketStore) ListBuckets(ctx context.Context, params *awss3.ListBucketsInput, optFns ...func(*awss3.Options)) (*awss3.ListBucketsOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := &awss3.ListBucketsOutput{}
	for name := range s.buckets {
		out.Buckets = append(out.Buckets, s3types.Bucket{Name: awssdk.String(name)})
	}
	return out, nil
}

func (s *fakeBucketStore) GetBucketAcl(ctx context.Context, params *awss3.GetBucketAclInput, optFns ...func(*awss3.Options)) (*awss3.GetBucketAclOutput, error) {
	return &awss3.GetBucketAclOutput{}, nil
}

func (s *fakeBucketStore) PutBucketPolicy(ctx context.Context, params *awss3.PutBucketPolicyInput, optFns ...func(*awss3.Options)) (*awss3.PutBucketPolicyOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	name := awssdk.ToString(params.Bucket)
	if !s.buckets[name] {
		return nil, &smithy.GenericAPIError{Code: "NoSuchBucket", Message: "The specified bucket does not exist"}
	}
	s.policies[name] = awssdk.ToString(params.Policy)
	return &awss3.PutBucketPolicyOutput{}, nil
}

func (s *fakeBucketStore) GetBucketPolicy(ctx context.Context, params *awss3.GetBucketPolicyInput, optFns ...func(*awss3.Options)) (*awss3.GetBucketPolicyOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	name := awssdk.ToString(params.Bucket)
	policy, ok := s.policies[name]
	if !ok {
		return nil, &smithy.GenericAPIError{Code: "NoSuchBucketPolicy", Message: "The bucket policy does not exist"}
	}
	return &awss3.GetBucketPolicyOutput{Policy: awssdk.String(policy)}, nil
}

func (s *fakeBucketStore) DeleteBucketPolicy(ctx context.Context, params *awss3.DeleteBucketPolicyInput, optFns ...func(*awss3.Options)) (*awss3.DeleteBucketPolicyOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.policies, awssdk.ToString(params.Bucket))
	return &awss3.DeleteBucketPolicyOutput{}, nil
}

func (s *fakeBucketStore) ListObjectVersions(ctx context.Context, params *awss3.ListObjectVersionsInput, optFns ...func(*awss3.Options)) (*awss3.ListObjectVersionsOutput, error) {
	return &awss3.ListObjectVersionsOutput{IsTruncated: awssdk.Bool(false)}, nil
}

func (s *fakeBucketStore) DeleteObjects(ctx context.Context, params *awss3.DeleteObjectsInput, optFns ...func(*awss3.Options)) (*awss3.DeleteObjectsOutput, error) {
	return &awss3.DeleteObjectsOutput{}, nil
}
