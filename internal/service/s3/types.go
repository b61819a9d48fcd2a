package s3

import (
	"context"

	awss3 "github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/sirupsen/logrus"
)

// S3API はBucketManagerが利用するS3 APIのサブセット
// テストではモック実装を注入する
type S3API interface {
	CreateBucket(ctx context.Context, params *awss3.CreateBucketInput, optFns ...func(*awss3.Options)) (*awss3.CreateBucketOutput, error)
	DeleteBucket(ctx context.Context, params *awss3.DeleteBucketInput, optFns ...func(*awss3.Options)) (*awss3.DeleteBucketOutput, error)
	HeadBucket(ctx context.Context, params *awss3.HeadBucketInput, optFns ...func(*awss3.Options)) (*awss3.HeadBucketOutput, error)
	ListBuckets(ctx context.Context, params *awss3.ListBucketsInput, optFns ...func(*awss3.Options)) (*awss3.ListBucketsOutput, error)
	GetBucketAcl(ctx context.Context, params *awss3.GetBucketAclInput, optFns ...func(*awss3.Options)) (*awss3.GetBucketAclOutput, error)
	PutBucketPolicy(ctx context.Context, params *awss3.PutBucketPolicyInput, optFns ...func(*awss3.Options)) (*awss3.PutBucketPolicyOutput, error)
	GetBucketPolicy(ctx context.Context, params *awss3.GetBucketPolicyInput, optFns ...func(*awss3.Options)) (*awss3.GetBucketPolicyOutput, error)
	DeleteBucketPolicy(ctx context.Context, params *awss3.DeleteBucketPolicyInput, optFns ...func(*awss3.Options)) (*awss3.DeleteBucketPolicyOutput, error)
	ListObjectVersions(ctx context.Context, params *awss3.ListObjectVersionsInput, optFns ...func(*awss3.Options)) (*awss3.ListObjectVersionsOutput, error)
	DeleteObjects(ctx context.Context, params *awss3.DeleteObjectsInput, optFns ...func(*awss3.Options)) (*awss3.DeleteObjectsOutput, error)
}

// BucketManager はS3バケットのライフサイクル・ACL・ポリシーを管理する
type BucketManager struct {
	api    S3API
	region string
	logger *logrus.Logger
}

// NewBucketManager はBucketManagerを作成する
func NewBucketManager(api S3API, region string, logger *logrus.Logger) *BucketManager {
	if logger == nil {
		logger = logrus.New()
	}
	return &BucketManager{api: api, region: region, logger: logger}
}

// Grant はバケットACLの許可エントリ
type Grant struct {
	Grantee    string // 表示名またはURI
	Permission string
}

// ACL はバケットの所有者と許可一覧
type ACL struct {
	OwnerName string
	OwnerId   string
	Grants    []Grant
}
