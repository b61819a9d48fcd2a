package s3

import (
	"context"

	"awssetup/internal/service/common"

	"github.com/aws/aws-sdk-go-v2/aws"
	awss3 "github.com/aws/aws-sdk-go-v2/service/s3"
)

// PutPolicy はバケットにポリシーを適用する
// policyはJSON形式のポリシードキュメント
func (b *BucketManager) PutPolicy(ctx context.Context, bucketName, policy string) error {
	_, err := b.api.PutBucketPolicy(ctx, &awss3.PutBucketPolicyInput{
		Bucket: aws.String(bucketName),
		Policy: aws.String(policy),
	})
	if err != nil {
		b.logger.WithError(err).Errorf("バケット %s へのポリシー適用に失敗しました", bucketName)
		return common.WrapProviderError("PutBucketPolicy", bucketName, b.region, err)
	}

	b.logger.Infof("バケット %s にポリシーを適用しました", bucketName)
	return nil
}

// GetPolicy はバケットのポリシードキュメント（JSON）を取得する
func (b *BucketManager) GetPolicy(ctx context.Context, bucketName string) (string, error) {
	out, err := b.api.GetBucketPolicy(ctx, &awss3.GetBucketPolicyInput{
		Bucket: aws.String(bucketName),
	})
	if err != nil {
		b.logger.WithError(err).Errorf("バケット %s のポリシー取得に失敗しました", bucketName)
		return "", common.WrapProviderError("GetBucketPolicy", bucketName, b.region, err)
	}

	policy := aws.ToString(out.Policy)
	b.logger.Infof("バケット %s のポリシーを取得しました", bucketName)

	return policy, nil
}

// DeletePolicy はバケットからポリシーを削除する
func (b *BucketManager) DeletePolicy(ctx context.Context, bucketName string) error {
	_, err := b.api.DeleteBucketPolicy(ctx, &awss3.DeleteBucketPolicyInput{
		Bucket: aws.String(bucketName),
	})
	if err != nil {
		b.logger.WithError(err).Errorf("バケット %s のポリシー削除に失敗しました", bucketName)
		return common.WrapProviderError("DeleteBucketPolicy", bucketName, b.region, err)
	}

	b.logger.Infof("バケット %s のポリシーを削除しました", bucketName)
	return nil
}
