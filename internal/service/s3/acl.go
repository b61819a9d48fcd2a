package s3

import (
	"context"

	"awssetup/internal/service/common"

	"github.com/aws/aws-sdk-go-v2/aws"
	awss3 "github.com/aws/aws-sdk-go-v2/service/s3"
)

// GetACL はバケットのACL（所有者と許可一覧）を取得する
func (b *BucketManager) GetACL(ctx context.Context, bucketName string) (ACL, error) {
	out, err := b.api.GetBucketAcl(ctx, &awss3.GetBucketAclInput{
		Bucket: aws.String(bucketName),
	})
	if err != nil {
		b.logger.WithError(err).Errorf("バケット %s のACL取得に失敗しました", bucketName)
		return ACL{}, common.WrapProviderError("GetBucketAcl", bucketName, b.region, err)
	}

	acl := ACL{}
	if out.Owner != nil {
		acl.OwnerName = aws.ToString(out.Owner.DisplayName)
		acl.OwnerId = aws.ToString(out.Owner.ID)
	}
	for _, grant := range out.Grants {
		g := Grant{Permission: string(grant.Permission)}
		if grant.Grantee != nil {
			if grant.Grantee.DisplayName != nil {
				g.Grantee = aws.ToString(grant.Grantee.DisplayName)
			} else {
				g.Grantee = aws.ToString(grant.Grantee.URI)
			}
		}
		acl.Grants = append(acl.Grants, g)
	}

	b.logger.Infof("バケット %s のACLを取得しました (owner=%s)", bucketName, acl.OwnerName)
	return acl, nil
}
