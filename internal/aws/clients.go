package aws

import (
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/aws/aws-sdk-go-v2/service/iam"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/sts"
)

// Clients はAWS設定と各サービスクライアントを管理
type Clients struct {
	cfg aws.Config

	// 遅延初期化されるクライアント群
	iam *iam.Client
	ec2 *ec2.Client
	s3  *s3.Client
	sts *sts.Client
}

// NewAwsClients は認証情報からAWS設定を読み込んでクライアント管理構造体を作成
func NewAwsClients(ctx Context) (*Clients, error) {
	cfg, err := ctx.GetConfig()
	if err != nil {
		return nil, err
	}

	return &Clients{cfg: cfg}, nil
}

// Region は読み込み済みAWS設定のリージョンを返す
func (c *Clients) Region() string {
	return c.cfg.Region
}

// Iam は遅延初期化でIAMクライアントを取得
func (c *Clients) Iam() *iam.Client {
	if c.iam == nil {
		c.iam = iam.NewFromConfig(c.cfg)
	}
	return c.iam
}

// Ec2 は遅延初期化でEC2クライアントを取得
func (c *Clients) Ec2() *ec2.Client {
	if c.ec2 == nil {
		c.ec2 = ec2.NewFromConfig(c.cfg)
	}
	return c.ec2
}

// S3 は遅延初期化でS3クライアントを取得
func (c *Clients) S3() *s3.Client {
	if c.s3 == nil {
		c.s3 = s3.NewFromConfig(c.cfg)
	}
	return c.s3
}

// Sts は遅延初期化でSTSクライアントを取得
func (c *Clients) Sts() *sts.Client {
	if c.sts == nil {
		c.sts = sts.NewFromConfig(c.cfg)
	}
	return c.sts
}
