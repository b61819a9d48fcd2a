package cmd

import (
	"context"
	"fmt"
	"os"

	"awssetup/internal/service/common"
	iamsvc "awssetup/internal/service/iam"

	"github.com/spf13/cobra"
)

var (
	// role create flags
	iamRoleName        string
	iamRoleDescription string
	// role delete flags
	iamRoleDeleteName string
	// policy create flags
	iamPolicyName     string
	iamPolicyRoleName string
	iamPolicyFile     string
	// profile flags
	iamProfileName     string
	iamProfileRoleName string
	iamProfileArn      string
)

// IamCmd represents the iam command
var IamCmd = &cobra.Command{
	Use:   "iam",
	Short: "IAMリソース操作コマンド",
	Long:  `IAMリソース（ロール/ポリシー/インスタンスプロファイル）に関する操作コマンド群です。`,
}

// iam role ...
var IamRoleCmd = &cobra.Command{
	Use:   "role",
	Short: "IAMロール操作",
}

var iamRoleCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "IAMロールを作成",
	Long: `EC2から引き受け可能な信頼ポリシー付きのIAMロールを作成します。

例:
  ` + AppName + ` iam role create -n svc-role -d "サービス用ロール"`,
	RunE: func(cmd *cobra.Command, args []string) error {
		clients, err := newAwsClients()
		if err != nil {
			return err
		}
		admin := iamsvc.NewAdmin(clients.Iam(), iamPath, clients.Region(), logger)

		roleArn, err := admin.CreateRole(cmd.Context(), iamRoleName, iamRoleDescription)
		if err != nil {
			return fmt.Errorf("❌ ロール作成でエラー: %w", err)
		}
		fmt.Printf("✅ IAMロールを作成しました: %s\n", roleArn)
		return nil
	},
	SilenceUsage: true,
}

var iamRoleDeleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "IAMロールを削除",
	Long: `IAMロールを削除します。
アタッチ済みの管理ポリシー、インスタンスプロファイルへの所属、
インラインポリシーを順に解除してから本体を削除します。

例:
  ` + AppName + ` iam role delete -n svc-role`,
	RunE: func(cmd *cobra.Command, args []string) error {
		clients, err := newAwsClients()
		if err != nil {
			return err
		}
		admin := iamsvc.NewAdmin(clients.Iam(), iamPath, clients.Region(), logger)

		if _, err := admin.DeleteRole(cmd.Context(), iamRoleDeleteName); err != nil {
			return fmt.Errorf("❌ ロール削除でエラー: %w", err)
		}
		fmt.Printf("✅ IAMロールを削除しました: %s\n", iamRoleDeleteName)
		return nil
	},
	SilenceUsage: true,
}

// iam policy ...
var IamPolicyCmd = &cobra.Command{
	Use:   "policy",
	Short: "IAMポリシー操作",
}

var iamPolicyCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "IAMポリシーを作成してロールにアタッチ",
	Long: `JSONファイルからIAMポリシーを作成し、指定ロールにアタッチします。

例:
  ` + AppName + ` iam policy create -n svc-policy -r svc-role -f policy.json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		content, err := os.ReadFile(iamPolicyFile)
		if err != nil {
			return fmt.Errorf("❌ ポリシーファイルの読み込みに失敗: %w", err)
		}

		clients, err := newAwsClients()
		if err != nil {
			return err
		}
		admin := iamsvc.NewAdmin(clients.Iam(), iamPath, clients.Region(), logger)

		result, err := admin.CreatePolicy(cmd.Context(), string(content), iamPolicyName, iamPolicyRoleName)
		if err != nil {
			return fmt.Errorf("❌ ポリシー作成でエラー: %w", err)
		}
		fmt.Printf("✅ IAMポリシーを作成してアタッチしました: %s (arn: %s)\n", result.PolicyName, result.PolicyArn)
		return nil
	},
	SilenceUsage: true,
}

// iam profile ...
var IamProfileCmd = &cobra.Command{
	Use:   "profile",
	Short: "インスタンスプロファイル操作",
}

var iamProfileCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "インスタンスプロファイルを作成",
	RunE: func(cmd *cobra.Command, args []string) error {
		clients, err := newAwsClients()
		if err != nil {
			return err
		}
		admin := iamsvc.NewAdmin(clients.Iam(), iamPath, clients.Region(), logger)

		profileArn, err := admin.CreateInstanceProfile(cmd.Context(), iamProfileName)
		if err != nil {
			return fmt.Errorf("❌ インスタンスプロファイル作成でエラー: %w", err)
		}
		fmt.Printf("✅ インスタンスプロファイルを作成しました: %s\n", profileArn)
		return nil
	},
	SilenceUsage: true,
}

var iamProfileGetCmd = &cobra.Command{
	Use:   "get",
	Short: "インスタンスプロファイルのARNを取得",
	RunE: func(cmd *cobra.Command, args []string) error {
		clients, err := newAwsClients()
		if err != nil {
			return err
		}
		admin := iamsvc.NewAdmin(clients.Iam(), iamPath, clients.Region(), logger)

		profileArn, err := admin.GetInstanceProfile(cmd.Context(), iamProfileName)
		if err != nil {
			return fmt.Errorf("❌ インスタンスプロファイル取得でエラー: %w", err)
		}
		if profileArn == "" {
			fmt.Printf("インスタンスプロファイル %s は見つかりませんでした\n", iamProfileName)
			return nil
		}
		fmt.Printf("%s インスタンスプロファイル: %s\n", common.InfoIcon, profileArn)
		return nil
	},
	SilenceUsage: true,
}

var iamProfileAddRoleCmd = &cobra.Command{
	Use:   "add-role",
	Short: "ロールをインスタンスプロファイルに追加",
	Long: `ロールをインスタンスプロファイルに追加します。
プロファイルに所属できるロールは1つだけです（2つ目の追加はプロバイダに拒否されます）。

例:
  ` + AppName + ` iam profile add-role -n svc-profile -r svc-role`,
	RunE: func(cmd *cobra.Command, args []string) error {
		clients, err := newAwsClients()
		if err != nil {
			return err
		}
		admin := iamsvc.NewAdmin(clients.Iam(), iamPath, clients.Region(), logger)

		// ARN未指定の場合は取得を試みる
		profileArn, err := resolveProfileArn(cmd.Context(), admin, iamProfileName, iamProfileArn)
		if err != nil {
			return err
		}

		arn, err := admin.AddRoleToInstanceProfile(cmd.Context(), iamProfileName, profileArn, iamProfileRoleName)
		if err != nil {
			return fmt.Errorf("❌ ロール追加でエラー: %w", err)
		}
		fmt.Printf("✅ ロールをインスタンスプロファイルに追加しました: %s\n", arn)
		return nil
	},
	SilenceUsage: true,
}

// resolveProfileArn は明示指定がなければプロファイルARNを検索で補完する
// プロファイルが存在しない場合は空ARNのまま進めずエラーを返す
func resolveProfileArn(ctx context.Context, admin *iamsvc.Admin, profileName, explicitArn string) (string, error) {
	if explicitArn != "" {
		return explicitArn, nil
	}
	arn, err := admin.GetInstanceProfile(ctx, profileName)
	if err != nil {
		return "", fmt.Errorf("❌ インスタンスプロファイル取得でエラー: %w", err)
	}
	if arn == "" {
		return "", fmt.Errorf("❌ インスタンスプロファイル %s が見つかりません。--arnで指定するか先に作成してください", profileName)
	}
	return arn, nil
}

func init() {
	RootCmd.AddCommand(IamCmd)
	IamCmd.AddCommand(IamRoleCmd)
	IamCmd.AddCommand(IamPolicyCmd)
	IamCmd.AddCommand(IamProfileCmd)
	IamRoleCmd.AddCommand(iamRoleCreateCmd)
	IamRoleCmd.AddCommand(iamRoleDeleteCmd)
	IamPolicyCmd.AddCommand(iamPolicyCreateCmd)
	IamProfileCmd.AddCommand(iamProfileCreateCmd)
	IamProfileCmd.AddCommand(iamProfileGetCmd)
	IamProfileCmd.AddCommand(iamProfileAddRoleCmd)

	// iam role create flags
	iamRoleCreateCmd.Flags().StringVarP(&iamRoleName, "name", "n", "", "作成するロール名（必須）")
	_ = iamRoleCreateCmd.MarkFlagRequired("name")
	iamRoleCreateCmd.Flags().StringVarP(&iamRoleDescription, "description", "d", "", "ロールの説明")

	// iam role delete flags
	iamRoleDeleteCmd.Flags().StringVarP(&iamRoleDeleteName, "name", "n", "", "削除するロール名（必須）")
	_ = iamRoleDeleteCmd.MarkFlagRequired("name")

	// iam policy create flags
	iamPolicyCreateCmd.Flags().StringVarP(&iamPolicyName, "name", "n", "", "作成するポリシー名（必須）")
	_ = iamPolicyCreateCmd.MarkFlagRequired("name")
	iamPolicyCreateCmd.Flags().StringVarP(&iamPolicyRoleName, "role", "r", "", "アタッチ先のロール名（必須）")
	_ = iamPolicyCreateCmd.MarkFlagRequired("role")
	iamPolicyCreateCmd.Flags().StringVarP(&iamPolicyFile, "file", "f", "", "ポリシードキュメント（JSON）のパス（必須）")
	_ = iamPolicyCreateCmd.MarkFlagRequired("file")

	// iam profile flags
	iamProfileCreateCmd.Flags().StringVarP(&iamProfileName, "name", "n", "", "プロファイル名（必須）")
	_ = iamProfileCreateCmd.MarkFlagRequired("name")
	iamProfileGetCmd.Flags().StringVarP(&iamProfileName, "name", "n", "", "プロファイル名（必須）")
	_ = iamProfileGetCmd.MarkFlagRequired("name")
	iamProfileAddRoleCmd.Flags().StringVarP(&iamProfileName, "name", "n", "", "プロファイル名（必須）")
	_ = iamProfileAddRoleCmd.MarkFlagRequired("name")
	iamProfileAddRoleCmd.Flags().StringVarP(&iamProfileRoleName, "role", "r", "", "追加するロール名（必須）")
	_ = iamProfileAddRoleCmd.MarkFlagRequired("role")
	iamProfileAddRoleCmd.Flags().StringVarP(&iamProfileArn, "arn", "a", "", "プロファイルARN（省略時は取得する）")
}
