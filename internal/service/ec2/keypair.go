package ec2

import (
	"context"
	"os"

	"awssetup/internal/service/common"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsec2 "github.com/aws/aws-sdk-go-v2/service/ec2"
)

// rotateKeyPair は同名の既存キーペアを削除してから新規作成し、
// 秘密鍵をkeyFileに書き出す。秘密鍵は作成時の一度しか取得できないため、
// 他の処理より先にファイルへの書き込みを完了させる
func (m *Manager) rotateKeyPair(ctx context.Context, keyPairName, keyFile string) error {
	// 既存キーペアの削除（存在しなくても成功する）
	_, err := m.api.DeleteKeyPair(ctx, &awsec2.DeleteKeyPairInput{
		KeyName: aws.String(keyPairName),
	})
	if err != nil {
		return common.WrapProviderError("DeleteKeyPair", keyPairName, m.region, err)
	}

	out, err := m.api.CreateKeyPair(ctx, &awsec2.CreateKeyPairInput{
		KeyName: aws.String(keyPairName),
	})
	if err != nil {
		return common.WrapProviderError("CreateKeyPair", keyPairName, m.region, err)
	}

	keyMaterial := aws.ToString(out.KeyMaterial)
	if err := os.WriteFile(keyFile, []byte(keyMaterial), 0600); err != nil {
		return err
	}

	m.logger.Debugf("キーペア %s を作り直して秘密鍵を %s に保存しました", keyPairName, keyFile)
	return nil
}
