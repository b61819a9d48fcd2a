package iam

import (
	"context"

	"awssetup/internal/service/common"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsiam "github.com/aws/aws-sdk-go-v2/service/iam"
)

// roleTeardown はロール削除前の依存解除を順序付きで実行するチェックリスト
// プロバイダはカスケード削除しないため、この順序を守らないと
// DeleteRoleが依存違反エラーで失敗する
type roleTeardown struct {
	admin    *Admin
	roleName string
}

// steps は実行順の解除ステップ一覧を返す
func (t *roleTeardown) steps() []func(context.Context) error {
	return []func(context.Context) error{
		t.detachManagedPolicies,
		t.removeFromInstanceProfiles,
		t.deleteInlinePolicies,
		t.deleteRole,
	}
}

// run は全ステップを順に実行し、最初の失敗で中断する
func (t *roleTeardown) run(ctx context.Context) error {
	for _, step := range t.steps() {
		if err := step(ctx); err != nil {
			return err
		}
	}
	return nil
}

// detachManagedPolicies はロールにアタッチされた管理ポリシーをすべてデタッチする
// 一覧はページ分割されるためマーカーで全ページを辿る
func (t *roleTeardown) detachManagedPolicies(ctx context.Context) error {
	t.admin.logger.Debugf("ロール %s から管理ポリシーをデタッチします", t.roleName)

	var marker *string
	for {
		out, err := t.admin.api.ListAttachedRolePolicies(ctx, &awsiam.ListAttachedRolePoliciesInput{
			RoleName: aws.String(t.roleName),
			Marker:   marker,
		})
		if err != nil {
			return common.WrapProviderError("ListAttachedRolePolicies", t.roleName, t.admin.region, err)
		}

		for _, policy := range out.AttachedPolicies {
			_, err := t.admin.api.DetachRolePolicy(ctx, &awsiam.DetachRolePolicyInput{
				RoleName:  aws.String(t.roleName),
				PolicyArn: policy.PolicyArn,
			})
			if err != nil {
				return common.WrapProviderError("DetachRolePolicy", aws.ToString(policy.PolicyName), t.admin.region, err)
			}
		}

		if !out.IsTruncated {
			return nil
		}
		marker = out.Marker
	}
}

// removeFromInstanceProfiles はロールを参照する全インスタンスプロファイルから除去する
func (t *roleTeardown) removeFromInstanceProfiles(ctx context.Context) error {
	t.admin.logger.Debugf("ロール %s をインスタンスプロファイルから除去します", t.roleName)

	var marker *string
	for {
		out, err := t.admin.api.ListInstanceProfilesForRole(ctx, &awsiam.ListInstanceProfilesForRoleInput{
			RoleName: aws.String(t.roleName),
			Marker:   marker,
		})
		if err != nil {
			return common.WrapProviderError("ListInstanceProfilesForRole", t.roleName, t.admin.region, err)
		}

		for _, profile := range out.InstanceProfiles {
			_, err := t.admin.api.RemoveRoleFromInstanceProfile(ctx, &awsiam.RemoveRoleFromInstanceProfileInput{
				InstanceProfileName: profile.InstanceProfileName,
				RoleName:            aws.String(t.roleName),
			})
			if err != nil {
				return common.WrapProviderError("RemoveRoleFromInstanceProfile", aws.ToString(profile.InstanceProfileName), t.admin.region, err)
			}
		}

		if !out.IsTruncated {
			return nil
		}
		marker = out.Marker
	}
}

// deleteInlinePolicies はロールのインラインポリシーをすべて削除する
func (t *roleTeardown) deleteInlinePolicies(ctx context.Context) error {
	t.admin.logger.Debugf("ロール %s のインラインポリシーを削除します", t.roleName)

	var marker *string
	for {
		out, err := t.admin.api.ListRolePolicies(ctx, &awsiam.ListRolePoliciesInput{
			RoleName: aws.String(t.roleName),
			Marker:   marker,
		})
		if err != nil {
			return common.WrapProviderError("ListRolePolicies", t.roleName, t.admin.region, err)
		}

		for _, policyName := range out.PolicyNames {
			_, err := t.admin.api.DeleteRolePolicy(ctx, &awsiam.DeleteRolePolicyInput{
				RoleName:   aws.String(t.roleName),
				PolicyName: aws.String(policyName),
			})
			if err != nil {
				return common.WrapProviderError("DeleteRolePolicy", policyName, t.admin.region, err)
			}
		}

		if !out.IsTruncated {
			return nil
		}
		marker = out.Marker
	}
}

// deleteRole は依存解除後のロール本体を削除する
func (t *roleTeardown) deleteRole(ctx context.Context) error {
	_, err := t.admin.api.DeleteRole(ctx, &awsiam.DeleteRoleInput{
		RoleName: aws.String(t.roleName),
	})
	if err != nil {
		return common.WrapProviderError("DeleteRole", t.roleName, t.admin.region, err)
	}
	return nil
}

// DeleteRole はロールの依存（管理ポリシー・プロファイル参照・インラインポリシー）を
// 順に解除してからロールを削除する。成功時はtrueを返す
func (a *Admin) DeleteRole(ctx context.Context, roleName string) (bool, error) {
	teardown := &roleTeardown{admin: a, roleName: roleName}

	if err := teardown.run(ctx); err != nil {
		a.logger.WithError(err).Errorf("ロール %s の削除に失敗しました", roleName)
		return false, err
	}

	a.logger.Infof("IAMロールを削除しました: %s", roleName)
	return true, nil
}
