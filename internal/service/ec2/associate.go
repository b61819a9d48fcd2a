package ec2

import (
	"context"

	"awssetup/internal/service/common"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsec2 "github.com/aws/aws-sdk-go-v2/service/ec2"
	ec2types "github.com/aws/aws-sdk-go-v2/service/ec2/types"
)

// AssociateProfile はインスタンスプロファイルをインスタンスに関連付け、
// 関連付けIDを返す
func (m *Manager) AssociateProfile(ctx context.Context, profileName, profileArn, instanceId string) (string, error) {
	out, err := m.api.AssociateIamInstanceProfile(ctx, &awsec2.AssociateIamInstanceProfileInput{
		IamInstanceProfile: &ec2types.IamInstanceProfileSpecification{
			Arn:  aws.String(profileArn),
			Name: aws.String(profileName),
		},
		InstanceId: aws.String(instanceId),
	})
	if err != nil {
		m.logger.Debugf("インスタンスID: %s", instanceId)
		m.logger.WithError(err).Errorf("インスタンス %s へのプロファイル関連付けに失敗しました (region=%s)",
			instanceId, m.region)
		return "", common.WrapProviderError("AssociateIamInstanceProfile", instanceId, m.region, err)
	}

	associationId := aws.ToString(out.IamInstanceProfileAssociation.AssociationId)
	m.logger.Debugf("インスタンスプロファイルを関連付けました: %s (instance=%s)", associationId, instanceId)

	return associationId, nil
}
