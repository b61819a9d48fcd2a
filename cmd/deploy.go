package cmd

import (
	"fmt"
	"os"

	"awssetup/internal/service/common"
	ec2svc "awssetup/internal/service/ec2"
	iamsvc "awssetup/internal/service/iam"
	s3svc "awssetup/internal/service/s3"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sts"
	"github.com/spf13/cobra"
)

var (
	deployName           string
	deployDescription    string
	deployPolicyFile     string
	deployKeyFile        string
	deployUserDataFile   string
	deploySecurityGroups []string
	deployBucketPrefix   string
	deployBucketPolicy   string
	deployWaitSeconds    int
)

// DeployCmd represents the deploy command
var DeployCmd = &cobra.Command{
	Use:   "deploy",
	Short: "ロール・インスタンス・バケットをまとめてセットアップ",
	Long: `IAMロールの作成からEC2インスタンスの起動、S3バケットの作成までを
一括で実行します。途中で失敗した場合はそこで中断します（作成済みリソースは残ります）。

実行順序:
  1. 認証情報の確認（STS）
  2. IAMロール作成（EC2信頼ポリシー付き）
  3. IAMポリシー作成＋アタッチ（--policy-file指定時）
  4. インスタンスプロファイル作成＋ロール追加
  5. キーペア作り直し＋インスタンス起動
  6. インスタンスへのプロファイル関連付け
  7. 一意な名前のS3バケット作成（＋ポリシー適用）

例:
  ` + AppName + ` deploy -n svc -k ./svc.pem -g sg-0123456789 -f policy.json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		clients, err := newAwsClients()
		if err != nil {
			return err
		}

		// 1. 認証情報の確認
		identity, err := clients.Sts().GetCallerIdentity(ctx, &sts.GetCallerIdentityInput{})
		if err != nil {
			return fmt.Errorf("❌ 認証情報の確認に失敗: %w", err)
		}
		fmt.Printf("🔍 アカウント %s として実行します (region=%s)\n", aws.ToString(identity.Account), clients.Region())

		admin := iamsvc.NewAdmin(clients.Iam(), iamPath, clients.Region(), logger)
		manager := ec2svc.NewManager(clients.Ec2(), clients.Region(), logger)
		buckets := s3svc.NewBucketManager(clients.S3(), clients.Region(), logger)

		roleName := deployName + "-role"
		profileName := deployName + "-profile"
		keyPairName := deployName + "-key"

		// 2. ロール作成
		roleArn, err := admin.CreateRole(ctx, roleName, deployDescription)
		if err != nil {
			return fmt.Errorf("❌ ロール作成でエラー: %w", err)
		}
		fmt.Printf("✅ IAMロールを作成しました: %s\n", roleArn)

		// 3. ポリシー作成＋アタッチ（任意）
		if deployPolicyFile != "" {
			content, err := os.ReadFile(deployPolicyFile)
			if err != nil {
				return fmt.Errorf("❌ ポリシーファイルの読み込みに失敗: %w", err)
			}
			result, err := admin.CreatePolicy(ctx, string(content), deployName+"-policy", roleName)
			if err != nil {
				return fmt.Errorf("❌ ポリシー作成でエラー: %w", err)
			}
			fmt.Printf("✅ IAMポリシーをアタッチしました: %s\n", result.PolicyArn)
		}

		// 4. インスタンスプロファイル作成＋ロール追加
		profileArn, err := admin.CreateInstanceProfile(ctx, profileName)
		if err != nil {
			return fmt.Errorf("❌ インスタンスプロファイル作成でエラー: %w", err)
		}
		if _, err := admin.AddRoleToInstanceProfile(ctx, profileName, profileArn, roleName); err != nil {
			return fmt.Errorf("❌ ロール追加でエラー: %w", err)
		}
		fmt.Printf("✅ インスタンスプロファイルを用意しました: %s\n", profileArn)

		// 5. インスタンス起動
		var startupScript string
		if deployUserDataFile != "" {
			content, err := os.ReadFile(deployUserDataFile)
			if err != nil {
				return fmt.Errorf("❌ 起動スクリプトの読み込みに失敗: %w", err)
			}
			startupScript = string(content)
		}
		instanceId, err := manager.CreateInstance(ctx, ec2svc.CreateInstanceOptions{
			KeyFile:        deployKeyFile,
			KeyPairName:    keyPairName,
			RoleArn:        roleArn,
			RoleName:       roleName,
			StartupScript:  startupScript,
			SecurityGroups: common.RemoveDuplicates(deploySecurityGroups),
		})
		if err != nil {
			return fmt.Errorf("❌ インスタンス起動でエラー: %w", err)
		}
		fmt.Printf("✅ EC2インスタンスを起動しました: %s\n", instanceId)

		if deployWaitSeconds > 0 {
			if err := manager.WaitUntilRunning(ctx, instanceId, deployWaitSeconds); err != nil {
				return fmt.Errorf("❌ 起動待機でエラー: %w", err)
			}
		}

		// 6. プロファイル関連付け
		associationId, err := manager.AssociateProfile(ctx, profileName, profileArn, instanceId)
		if err != nil {
			return fmt.Errorf("❌ プロファイル関連付けでエラー: %w", err)
		}
		fmt.Printf("✅ インスタンスプロファイルを関連付けました: %s\n", associationId)

		// 7. バケット作成（＋ポリシー適用）
		bucketName := s3svc.CreateBucketName(deployBucketPrefix)
		if err := buckets.CreateBucket(ctx, bucketName); err != nil {
			return fmt.Errorf("❌ バケット作成でエラー: %w", err)
		}
		fmt.Printf("✅ バケットを作成しました: %s\n", bucketName)

		if deployBucketPolicy != "" {
			content, err := os.ReadFile(deployBucketPolicy)
			if err != nil {
				return fmt.Errorf("❌ バケットポリシーファイルの読み込みに失敗: %w", err)
			}
			if err := buckets.PutPolicy(ctx, bucketName, string(content)); err != nil {
				return fmt.Errorf("❌ バケットポリシー適用でエラー: %w", err)
			}
			fmt.Printf("✅ バケット %s にポリシーを適用しました\n", bucketName)
		}

		fmt.Println("\n🎉 セットアップ完了！")
		return nil
	},
	SilenceUsage: true,
}

func init() {
	RootCmd.AddCommand(DeployCmd)

	DeployCmd.Flags().StringVarP(&deployName, "name", "n", "", "リソース名のベース（必須、<name>-role等になる）")
	_ = DeployCmd.MarkFlagRequired("name")
	DeployCmd.Flags().StringVarP(&deployDescription, "description", "d", "", "ロールの説明")
	DeployCmd.Flags().StringVarP(&deployPolicyFile, "policy-file", "f", "", "ロールにアタッチするポリシー（JSON）のパス")
	DeployCmd.Flags().StringVarP(&deployKeyFile, "key-file", "k", "", "秘密鍵の保存先パス（必須）")
	_ = DeployCmd.MarkFlagRequired("key-file")
	DeployCmd.Flags().StringVarP(&deployUserDataFile, "user-data", "u", "", "起動スクリプトファイルのパス")
	DeployCmd.Flags().StringSliceVarP(&deploySecurityGroups, "security-group", "g", []string{}, "セキュリティグループID（複数指定可）")
	DeployCmd.Flags().StringVarP(&deployBucketPrefix, "bucket-prefix", "b", "sth", "バケット名のプレフィックス")
	DeployCmd.Flags().StringVar(&deployBucketPolicy, "bucket-policy", "", "バケットに適用するポリシー（JSON）のパス")
	DeployCmd.Flags().IntVar(&deployWaitSeconds, "wait", 0, "インスタンスがrunningになるまで待機する秒数（0=待機しない）")
}
