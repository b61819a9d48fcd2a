package iam

import (
	"context"

	"awssetup/internal/service/common"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsiam "github.com/aws/aws-sdk-go-v2/service/iam"
)

// CreatePolicy はポリシーを作成し、続けて指定ロールにアタッチする
// ポリシー作成後にアタッチが失敗した場合、作成済みポリシーは残る（ロールバックしない）
func (a *Admin) CreatePolicy(ctx context.Context, policyContent, policyName, roleName string) (PolicyResult, error) {
	createOut, err := a.api.CreatePolicy(ctx, &awsiam.CreatePolicyInput{
		PolicyName:     aws.String(policyName),
		PolicyDocument: aws.String(policyContent),
	})
	if err != nil {
		a.logger.WithError(err).Errorf("ポリシー %s の作成に失敗しました (role=%s)", policyName, roleName)
		return PolicyResult{}, common.WrapProviderError("CreatePolicy", policyName, a.region, err)
	}

	policyArn := aws.ToString(createOut.Policy.Arn)

	_, err = a.api.AttachRolePolicy(ctx, &awsiam.AttachRolePolicyInput{
		PolicyArn: aws.String(policyArn),
		RoleName:  aws.String(roleName),
	})
	if err != nil {
		a.logger.WithError(err).Errorf("ポリシー %s のロール %s へのアタッチに失敗しました", policyName, roleName)
		return PolicyResult{}, common.WrapProviderError("AttachRolePolicy", policyName, a.region, err)
	}

	a.logger.Debugf("IAMポリシーを作成してアタッチしました: %s (arn: %s)", policyName, policyArn)

	return PolicyResult{
		PolicyName: policyName,
		PolicyArn:  policyArn,
		RoleName:   roleName,
	}, nil
}
