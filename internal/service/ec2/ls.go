package ec2

import (
	"context"

	"awssetup/internal/service/common"

	awsec2 "github.com/aws/aws-sdk-go-v2/service/ec2"
	ec2types "github.com/aws/aws-sdk-go-v2/service/ec2/types"
)

// ListInstances は現在のリージョンのEC2インスタンス一覧を取得する
func (m *Manager) ListInstances(ctx context.Context) ([]Instance, error) {
	result, err := m.api.DescribeInstances(ctx, &awsec2.DescribeInstancesInput{})
	if err != nil {
		return nil, common.WrapProviderError("DescribeInstances", "", m.region, err)
	}

	var instances []Instance
	for _, reservation := range result.Reservations {
		for _, instance := range reservation.Instances {
			// 終了済みのインスタンスは除外
			if instance.State.Name == ec2types.InstanceStateNameTerminated {
				continue
			}

			// インスタンス名を取得（Nameタグから）
			instanceName := "（名前なし）"
			for _, tag := range instance.Tags {
				if *tag.Key == "Name" && tag.Value != nil {
					instanceName = *tag.Value
					break
				}
			}

			instances = append(instances, Instance{
				InstanceId:   *instance.InstanceId,
				InstanceName: instanceName,
				State:        string(instance.State.Name),
			})
		}
	}

	return instances, nil
}
