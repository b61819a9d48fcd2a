package s3

import (
	"context"
	"time"

	"awssetup/internal/service/common"

	"github.com/aws/aws-sdk-go-v2/aws"
	awss3 "github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"
)

// bucketWaitTimeout は作成/削除確認待ちの上限時間
const bucketWaitTimeout = 2 * time.Minute

// CreateBucket はセッションのリージョンにバケットを作成し、
// プロバイダが存在を確認するまでブロックする
func (b *BucketManager) CreateBucket(ctx context.Context, bucketName string) error {
	input := &awss3.CreateBucketInput{
		Bucket: aws.String(bucketName),
	}
	// us-east-1ではLocationConstraintを指定できない
	if b.region != "us-east-1" {
		input.CreateBucketConfiguration = &s3types.CreateBucketConfiguration{
			LocationConstraint: s3types.BucketLocationConstraint(b.region),
		}
	}

	_, err := b.api.CreateBucket(ctx, input)
	if err != nil {
		b.logger.WithError(err).Errorf("バケット %s の作成に失敗しました (region=%s)", bucketName, b.region)
		if common.ErrorCode(err) == "IllegalLocationConstraintException" {
			b.logger.Errorf("セッションのリージョンとLocationConstraintが一致していません。"+
				"us-east-1以外のリージョンではセッションリージョン（%s）と同じLocationConstraintを指定してください", b.region)
		}
		return common.WrapProviderError("CreateBucket", bucketName, b.region, err)
	}

	waiter := awss3.NewBucketExistsWaiter(b.api)
	if err := waiter.Wait(ctx, &awss3.HeadBucketInput{Bucket: aws.String(bucketName)}, bucketWaitTimeout); err != nil {
		b.logger.WithError(err).Errorf("バケット %s の存在確認に失敗しました", bucketName)
		return common.WrapProviderError("HeadBucket", bucketName, b.region, err)
	}

	b.logger.Infof("バケット %s を作成しました (region=%s)", bucketName, b.region)
	return nil
}

// DeleteBucket はバケットを削除し、プロバイダが消滅を確認するまでブロックする
// バケットは空でなければならない
func (b *BucketManager) DeleteBucket(ctx context.Context, bucketName string) error {
	_, err := b.api.DeleteBucket(ctx, &awss3.DeleteBucketInput{
		Bucket: aws.String(bucketName),
	})
	if err != nil {
		b.logger.WithError(err).Errorf("バケット %s の削除に失敗しました", bucketName)
		return common.WrapProviderError("DeleteBucket", bucketName, b.region, err)
	}

	waiter := awss3.NewBucketNotExistsWaiter(b.api)
	if err := waiter.Wait(ctx, &awss3.HeadBucketInput{Bucket: aws.String(bucketName)}, bucketWaitTimeout); err != nil {
		b.logger.WithError(err).Errorf("バケット %s の消滅確認に失敗しました", bucketName)
		return common.WrapProviderError("HeadBucket", bucketName, b.region, err)
	}

	b.logger.Infof("バケット %s を削除しました", bucketName)
	return nil
}

// BucketExists はバケットの存在をHeadBucketで確認する
// 「存在しない」と「アクセス権限がない」は区別できず、どちらもfalseになる
func (b *BucketManager) BucketExists(ctx context.Context, bucketName string) bool {
	_, err := b.api.HeadBucket(ctx, &awss3.HeadBucketInput{
		Bucket: aws.String(bucketName),
	})
	if err != nil {
		b.logger.Warnf("バケット %s は存在しないかアクセス権限がありません", bucketName)
		return false
	}

	b.logger.Infof("バケット %s は存在します", bucketName)
	return true
}

// ListBuckets は既存バケット名の一覧を返す
func (b *BucketManager) ListBuckets(ctx context.Context) ([]string, error) {
	out, err := b.api.ListBuckets(ctx, &awss3.ListBucketsInput{})
	if err != nil {
		return nil, common.WrapProviderError("ListBuckets", "", b.region, err)
	}

	names := make([]string, 0, len(out.Buckets))
	for _, bucket := range out.Buckets {
		names = append(names, aws.ToString(bucket.Name))
	}
	return names, nil
}
