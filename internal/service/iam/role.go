package iam

import (
	"context"
	"encoding/json"

	"awssetup/internal/service/common"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsiam "github.com/aws/aws-sdk-go-v2/service/iam"
)

// assumeRoleService はロールを引き受けるサービスプリンシパル
const assumeRoleService = "ec2.amazonaws.com"

// maxSessionDuration はロールの最大セッション時間（秒）
const maxSessionDuration = int32(3600)

type trustPolicyDocument struct {
	Version   string                 `json:"Version"`
	Statement []trustPolicyStatement `json:"Statement"`
}

type trustPolicyStatement struct {
	Sid       string            `json:"Sid"`
	Effect    string            `json:"Effect"`
	Principal map[string]string `json:"Principal"`
	Action    string            `json:"Action"`
}

// CreateRole はEC2から引き受け可能なIAMロールを作成し、付与されたARNを返す
func (a *Admin) CreateRole(ctx context.Context, roleName, description string) (string, error) {
	trustPolicy := trustPolicyDocument{
		Version: "2012-10-17",
		Statement: []trustPolicyStatement{
			{
				Sid:       "",
				Effect:    "Allow",
				Principal: map[string]string{"Service": assumeRoleService},
				Action:    "sts:AssumeRole",
			},
		},
	}

	doc, err := json.Marshal(trustPolicy)
	if err != nil {
		return "", err
	}

	out, err := a.api.CreateRole(ctx, &awsiam.CreateRoleInput{
		Path:                     aws.String("/" + a.path + "/"),
		RoleName:                 aws.String(roleName),
		AssumeRolePolicyDocument: aws.String(string(doc)),
		Description:              aws.String(description),
		MaxSessionDuration:       aws.Int32(maxSessionDuration),
	})
	if err != nil {
		a.logger.WithError(err).Errorf("ロール %s の作成に失敗しました (region=%s)", roleName, a.region)
		return "", common.WrapProviderError("CreateRole", roleName, a.region, err)
	}

	roleArn := aws.ToString(out.Role.Arn)
	a.logger.Debugf("IAMロールを作成しました: %s", roleArn)

	return roleArn, nil
}
