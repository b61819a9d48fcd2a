package ec2

import (
	"context"

	awsec2 "github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/sirupsen/logrus"
)

// Ec2API はManagerが利用するEC2 APIのサブセット
// テストではモック実装を注入する
type Ec2API interface {
	DeleteKeyPair(ctx context.Context, params *awsec2.DeleteKeyPairInput, optFns ...func(*awsec2.Options)) (*awsec2.DeleteKeyPairOutput, error)
	CreateKeyPair(ctx context.Context, params *awsec2.CreateKeyPairInput, optFns ...func(*awsec2.Options)) (*awsec2.CreateKeyPairOutput, error)
	RunInstances(ctx context.Context, params *awsec2.RunInstancesInput, optFns ...func(*awsec2.Options)) (*awsec2.RunInstancesOutput, error)
	DescribeInstances(ctx context.Context, params *awsec2.DescribeInstancesInput, optFns ...func(*awsec2.Options)) (*awsec2.DescribeInstancesOutput, error)
	AssociateIamInstanceProfile(ctx context.Context, params *awsec2.AssociateIamInstanceProfileInput, optFns ...func(*awsec2.Options)) (*awsec2.AssociateIamInstanceProfileOutput, error)
}

// Manager はEC2インスタンスのライフサイクルを管理する
type Manager struct {
	api    Ec2API
	region string
	logger *logrus.Logger
}

// NewManager はManagerを作成する
func NewManager(api Ec2API, region string, logger *logrus.Logger) *Manager {
	if logger == nil {
		logger = logrus.New()
	}
	return &Manager{api: api, region: region, logger: logger}
}

// CreateInstanceOptions はインスタンス作成時のオプション
type CreateInstanceOptions struct {
	KeyFile        string   // 秘密鍵の書き出し先パス
	KeyPairName    string   // キーペア名（既存があれば作り直す）
	RoleArn        string   // 割り当て予定のロールARN（ログ用）
	RoleName       string   // 割り当て予定のロール名（ログ用）
	StartupScript  string   // 起動時のブートストラップスクリプト
	SecurityGroups []string // セキュリティグループID
}

// Instance はEC2インスタンスの情報を格納する構造体
type Instance struct {
	InstanceId   string
	InstanceName string
	State        string
}
