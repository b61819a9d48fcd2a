package iam

import (
	"context"
	"errors"

	"awssetup/internal/service/common"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsiam "github.com/aws/aws-sdk-go-v2/service/iam"
	iamtypes "github.com/aws/aws-sdk-go-v2/service/iam/types"
)

// CreateInstanceProfile はインスタンスプロファイルを作成し、ARNを返す
func (a *Admin) CreateInstanceProfile(ctx context.Context, profileName string) (string, error) {
	out, err := a.api.CreateInstanceProfile(ctx, &awsiam.CreateInstanceProfileInput{
		InstanceProfileName: aws.String(profileName),
		Path:                aws.String("/" + a.path + "/"),
	})
	if err != nil {
		a.logger.WithError(err).Errorf("インスタンスプロファイル %s の作成に失敗しました", profileName)
		return "", common.WrapProviderError("CreateInstanceProfile", profileName, a.region, err)
	}

	profileArn := aws.ToString(out.InstanceProfile.Arn)
	a.logger.Debugf("インスタンスプロファイルを作成しました: %s", profileArn)

	return profileArn, nil
}

// GetInstanceProfile はインスタンスプロファイルのARNを取得する
// 存在しない場合はエラーではなく空文字を返す
func (a *Admin) GetInstanceProfile(ctx context.Context, profileName string) (string, error) {
	out, err := a.api.GetInstanceProfile(ctx, &awsiam.GetInstanceProfileInput{
		InstanceProfileName: aws.String(profileName),
	})
	if err != nil {
		var notFound *iamtypes.NoSuchEntityException
		if errors.As(err, &notFound) {
			a.logger.Warnf("インスタンスプロファイル %s は存在しません (region=%s)", profileName, a.region)
			return "", nil
		}
		a.logger.WithError(err).Errorf("インスタンスプロファイル %s の取得に失敗しました (region=%s)", profileName, a.region)
		return "", common.WrapProviderError("GetInstanceProfile", profileName, a.region, err)
	}

	profileArn := aws.ToString(out.InstanceProfile.Arn)
	a.logger.Debugf("インスタンスプロファイルを取得しました: %s", profileArn)

	return profileArn, nil
}

// AddRoleToInstanceProfile はロールをインスタンスプロファイルに追加する
// プロファイルには同時に1つのロールしか所属できない（2つ目はプロバイダが拒否する）
func (a *Admin) AddRoleToInstanceProfile(ctx context.Context, profileName, profileArn, roleName string) (string, error) {
	_, err := a.api.AddRoleToInstanceProfile(ctx, &awsiam.AddRoleToInstanceProfileInput{
		InstanceProfileName: aws.String(profileName),
		RoleName:            aws.String(roleName),
	})
	if err != nil {
		a.logger.WithError(err).Errorf("ロール %s のインスタンスプロファイル %s への追加に失敗しました (region=%s)",
			roleName, profileName, a.region)
		return "", common.WrapProviderError("AddRoleToInstanceProfile", profileName, a.region, err)
	}

	a.logger.Debugf("ロールをインスタンスプロファイルに追加しました: %s", profileArn)

	return profileArn, nil
}
