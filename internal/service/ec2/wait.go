package ec2

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsec2 "github.com/aws/aws-sdk-go-v2/service/ec2"
	ec2types "github.com/aws/aws-sdk-go-v2/service/ec2/types"
	"github.com/schollz/progressbar/v3"
)

// waitPollInterval はrunning待ちのポーリング間隔
const waitPollInterval = 5 * time.Second

// WaitUntilRunning はインスタンスがrunningになるまでポーリングで待機する
// timeoutSecondsを超えた場合はエラーを返す
func (m *Manager) WaitUntilRunning(ctx context.Context, instanceId string, timeoutSeconds int) error {
	attempts := timeoutSeconds / int(waitPollInterval.Seconds())
	if attempts < 1 {
		attempts = 1
	}

	bar := progressbar.NewOptions(attempts,
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionShowBytes(false),
		progressbar.OptionSetWidth(40),
		progressbar.OptionSetDescription("起動待機中..."),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "=",
			SaucerHead:    ">",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}),
		progressbar.OptionShowCount(),
		progressbar.OptionShowElapsedTimeOnFinish(),
	)

	for i := 0; i < attempts; i++ {
		out, err := m.api.DescribeInstances(ctx, &awsec2.DescribeInstancesInput{
			InstanceIds: []string{instanceId},
		})
		if err == nil {
			for _, reservation := range out.Reservations {
				for _, instance := range reservation.Instances {
					if aws.ToString(instance.InstanceId) != instanceId {
						continue
					}
					if instance.State.Name == ec2types.InstanceStateNameRunning {
						_ = bar.Finish()
						fmt.Printf("\n✅ インスタンス %s が起動しました\n", instanceId)
						return nil
					}
				}
			}
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(waitPollInterval):
		}
		_ = bar.Add(1)
	}

	return fmt.Errorf("インスタンス %s が%d秒以内にrunningになりませんでした", instanceId, timeoutSeconds)
}
