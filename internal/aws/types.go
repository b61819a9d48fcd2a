package aws

import "github.com/aws/aws-sdk-go-v2/aws"

// Context AwsContext は認証情報とIAMパスプレフィックスを保持
type Context struct {
	Profile string
	Region  string
	Path    string      // IAMロール/インスタンスプロファイルのパスプレフィックス
	config  *aws.Config // AWS設定のキャッシュ（非公開）
}
