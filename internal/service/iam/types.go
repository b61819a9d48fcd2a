package iam

import (
	"context"

	awsiam "github.com/aws/aws-sdk-go-v2/service/iam"
	"github.com/sirupsen/logrus"
)

// IamAPI はAdminが利用するIAM APIのサブセット
// テストではモック実装を注入する
type IamAPI interface {
	CreateRole(ctx context.Context, params *awsiam.CreateRoleInput, optFns ...func(*awsiam.Options)) (*awsiam.CreateRoleOutput, error)
	DeleteRole(ctx context.Context, params *awsiam.DeleteRoleInput, optFns ...func(*awsiam.Options)) (*awsiam.DeleteRoleOutput, error)
	CreatePolicy(ctx context.Context, params *awsiam.CreatePolicyInput, optFns ...func(*awsiam.Options)) (*awsiam.CreatePolicyOutput, error)
	AttachRolePolicy(ctx context.Context, params *awsiam.AttachRolePolicyInput, optFns ...func(*awsiam.Options)) (*awsiam.AttachRolePolicyOutput, error)
	DetachRolePolicy(ctx context.Context, params *awsiam.DetachRolePolicyInput, optFns ...func(*awsiam.Options)) (*awsiam.DetachRolePolicyOutput, error)
	ListAttachedRolePolicies(ctx context.Context, params *awsiam.ListAttachedRolePoliciesInput, optFns ...func(*awsiam.Options)) (*awsiam.ListAttachedRolePoliciesOutput, error)
	ListRolePolicies(ctx context.Context, params *awsiam.ListRolePoliciesInput, optFns ...func(*awsiam.Options)) (*awsiam.ListRolePoliciesOutput, error)
	DeleteRolePolicy(ctx context.Context, params *awsiam.DeleteRolePolicyInput, optFns ...func(*awsiam.Options)) (*awsiam.DeleteRolePolicyOutput, error)
	ListInstanceProfilesForRole(ctx context.Context, params *awsiam.ListInstanceProfilesForRoleInput, optFns ...func(*awsiam.Options)) (*awsiam.ListInstanceProfilesForRoleOutput, error)
	RemoveRoleFromInstanceProfile(ctx context.Context, params *awsiam.RemoveRoleFromInstanceProfileInput, optFns ...func(*awsiam.Options)) (*awsiam.RemoveRoleFromInstanceProfileOutput, error)
	CreateInstanceProfile(ctx context.Context, params *awsiam.CreateInstanceProfileInput, optFns ...func(*awsiam.Options)) (*awsiam.CreateInstanceProfileOutput, error)
	GetInstanceProfile(ctx context.Context, params *awsiam.GetInstanceProfileInput, optFns ...func(*awsiam.Options)) (*awsiam.GetInstanceProfileOutput, error)
	AddRoleToInstanceProfile(ctx context.Context, params *awsiam.AddRoleToInstanceProfileInput, optFns ...func(*awsiam.Options)) (*awsiam.AddRoleToInstanceProfileOutput, error)
}

// Admin はIAMロール・ポリシー・インスタンスプロファイルを管理する
type Admin struct {
	api    IamAPI
	path   string // ロール/プロファイルのパスプレフィックス（スラッシュなし）
	region string
	logger *logrus.Logger
}

// NewAdmin はAdminを作成する
func NewAdmin(api IamAPI, path, region string, logger *logrus.Logger) *Admin {
	if logger == nil {
		logger = logrus.New()
	}
	return &Admin{api: api, path: path, region: region, logger: logger}
}

// PolicyResult はポリシー作成＋アタッチの結果
type PolicyResult struct {
	PolicyName string
	PolicyArn  string
	RoleName   string // アタッチ先ロール
}
