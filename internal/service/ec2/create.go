package ec2

import (
	"context"
	"encoding/base64"
	"fmt"

	"awssetup/internal/service/common"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsec2 "github.com/aws/aws-sdk-go-v2/service/ec2"
	ec2types "github.com/aws/aws-sdk-go-v2/service/ec2/types"
)

const (
	// defaultImageId は起動するAMI（Amazon Linux 2）
	defaultImageId = "ami-032598fcc7e9d1c7a"
	// defaultInstanceType は起動するインスタンスタイプ
	defaultInstanceType = ec2types.InstanceTypeT2Micro
)

// CreateInstance はキーペアを作り直してからインスタンスを1台起動し、
// 起動レスポンスに含まれるインスタンスIDを返す
func (m *Manager) CreateInstance(ctx context.Context, opts CreateInstanceOptions) (string, error) {
	if err := m.rotateKeyPair(ctx, opts.KeyPairName, opts.KeyFile); err != nil {
		m.logger.WithError(err).Errorf("キーペア %s の作り直しに失敗しました (region=%s)", opts.KeyPairName, m.region)
		return "", err
	}

	// UserDataはbase64エンコードが必要
	userData := base64.StdEncoding.EncodeToString([]byte(opts.StartupScript))

	out, err := m.api.RunInstances(ctx, &awsec2.RunInstancesInput{
		ImageId:          aws.String(defaultImageId),
		InstanceType:     defaultInstanceType,
		MinCount:         aws.Int32(1),
		MaxCount:         aws.Int32(1),
		UserData:         aws.String(userData),
		SecurityGroupIds: opts.SecurityGroups,
		KeyName:          aws.String(opts.KeyPairName),
	})
	if err != nil {
		m.logger.WithError(err).Errorf("EC2インスタンスの起動に失敗しました (region=%s)", m.region)
		return "", common.WrapProviderError("RunInstances", opts.KeyPairName, m.region, err)
	}

	if len(out.Instances) == 0 {
		return "", fmt.Errorf("RunInstancesのレスポンスにインスタンスが含まれていません")
	}

	// インスタンスIDは起動レスポンスから直接取る
	// （全インスタンスの走査で解決すると並行起動時に取り違える）
	instanceId := aws.ToString(out.Instances[0].InstanceId)
	m.logger.Debugf("EC2インスタンスを起動しました: %s (role=%s)", instanceId, opts.RoleName)

	// 確認用に現在のインスタンス一覧をデバッグログに出す
	if instances, listErr := m.ListInstances(ctx); listErr == nil {
		for _, ins := range instances {
			m.logger.Debugf("インスタンスID: %s 状態: %s", ins.InstanceId, ins.State)
		}
	}

	return instanceId, nil
}
