package cmd

import (
	"fmt"
	"os"

	"awssetup/internal/service/common"
	s3svc "awssetup/internal/service/s3"

	"github.com/spf13/cobra"
)

var (
	// create flags
	s3BucketPrefix string
	s3BucketName   string
	// policy flags
	s3PolicyFile string
	// cleanup flags
	s3CleanupKeyword string
)

// S3Cmd represents the s3 command
var S3Cmd = &cobra.Command{
	Use:   "s3",
	Short: "S3リソース操作コマンド",
	Long:  `S3バケットの作成・削除・存在確認・ACL/ポリシー管理を行うコマンド群です。`,
}

// newBucketManager はS3クライアントからBucketManagerを作成する
func newBucketManager() (*s3svc.BucketManager, error) {
	clients, err := newAwsClients()
	if err != nil {
		return nil, err
	}
	return s3svc.NewBucketManager(clients.S3(), clients.Region(), logger), nil
}

var s3CreateCmd = &cobra.Command{
	Use:   "create",
	Short: "S3バケットを作成",
	Long: `S3バケットを作成します。バケット名を指定しない場合は
プレフィックスにUUIDを連結した一意な名前を生成します。
プロバイダが存在を確認するまでブロックします。

例:
  ` + AppName + ` s3 create -p myapp-
  ` + AppName + ` s3 create --name myapp-fixed-name`,
	RunE: func(cmd *cobra.Command, args []string) error {
		manager, err := newBucketManager()
		if err != nil {
			return err
		}

		bucketName := s3BucketName
		if bucketName == "" {
			bucketName = s3svc.CreateBucketName(s3BucketPrefix)
		}

		if err := manager.CreateBucket(cmd.Context(), bucketName); err != nil {
			return fmt.Errorf("❌ バケット作成でエラー: %w", err)
		}
		fmt.Printf("✅ バケットを作成しました: %s (%s)\n", bucketName, region)
		return nil
	},
	SilenceUsage: true,
}

var s3LsCmd = &cobra.Command{
	Use:   "ls",
	Short: "S3バケット一覧を表示",
	RunE: func(cmd *cobra.Command, args []string) error {
		manager, err := newBucketManager()
		if err != nil {
			return err
		}

		buckets, err := manager.ListBuckets(cmd.Context())
		if err != nil {
			return common.FormatListError("S3バケット", err)
		}

		common.PrintSimpleList(common.ListOutput{
			Title:        "S3バケット一覧",
			Items:        buckets,
			ResourceName: "バケット",
			ShowCount:    true,
		})
		return nil
	},
	SilenceUsage: true,
}

var s3ExistsCmd = &cobra.Command{
	Use:   "exists <バケット名>",
	Short: "S3バケットの存在を確認",
	Long: `バケットの存在をHeadBucketで確認します。
存在しない場合とアクセス権限がない場合は区別されません。`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		manager, err := newBucketManager()
		if err != nil {
			return err
		}

		if manager.BucketExists(cmd.Context(), args[0]) {
			fmt.Printf("✅ バケット %s は存在します\n", args[0])
		} else {
			fmt.Printf("❌ バケット %s は存在しないかアクセス権限がありません\n", args[0])
		}
		return nil
	},
	SilenceUsage: true,
}

var s3RmCmd = &cobra.Command{
	Use:   "rm <バケット名>",
	Short: "空のS3バケットを削除",
	Long:  `バケットを削除します。バケットは空でなければなりません。中身ごと削除する場合はcleanupを使用してください。`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		manager, err := newBucketManager()
		if err != nil {
			return err
		}

		if err := manager.DeleteBucket(cmd.Context(), args[0]); err != nil {
			return fmt.Errorf("❌ バケット削除でエラー: %w", err)
		}
		fmt.Printf("✅ バケットを削除しました: %s\n", args[0])
		return nil
	},
	SilenceUsage: true,
}

var s3AclCmd = &cobra.Command{
	Use:   "acl <バケット名>",
	Short: "S3バケットのACLを表示",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		manager, err := newBucketManager()
		if err != nil {
			return err
		}

		acl, err := manager.GetACL(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("❌ ACL取得でエラー: %w", err)
		}

		fmt.Printf("%s バケット %s のACL (owner: %s)\n", common.InfoIcon, args[0], acl.OwnerName)
		columns := []common.TableColumn{
			{Header: "被付与者"},
			{Header: "権限"},
		}
		data := make([][]string, len(acl.Grants))
		for i, grant := range acl.Grants {
			data[i] = []string{grant.Grantee, grant.Permission}
		}
		common.PrintTable("", columns, data)
		return nil
	},
	SilenceUsage: true,
}

// s3 policy ...
var S3PolicyCmd = &cobra.Command{
	Use:   "policy",
	Short: "S3バケットポリシー操作",
}

var s3PolicyPutCmd = &cobra.Command{
	Use:   "put <バケット名>",
	Short: "バケットポリシーを適用",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		content, err := os.ReadFile(s3PolicyFile)
		if err != nil {
			return fmt.Errorf("❌ ポリシーファイルの読み込みに失敗: %w", err)
		}

		manager, err := newBucketManager()
		if err != nil {
			return err
		}

		if err := manager.PutPolicy(cmd.Context(), args[0], string(content)); err != nil {
			return fmt.Errorf("❌ ポリシー適用でエラー: %w", err)
		}
		fmt.Printf("✅ バケット %s にポリシーを適用しました\n", args[0])
		return nil
	},
	SilenceUsage: true,
}

var s3PolicyGetCmd = &cobra.Command{
	Use:   "get <バケット名>",
	Short: "バケットポリシーを表示",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		manager, err := newBucketManager()
		if err != nil {
			return err
		}

		policy, err := manager.GetPolicy(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("❌ ポリシー取得でエラー: %w", err)
		}
		fmt.Println(policy)
		return nil
	},
	SilenceUsage: true,
}

var s3PolicyDeleteCmd = &cobra.Command{
	Use:   "delete <バケット名>",
	Short: "バケットポリシーを削除",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		manager, err := newBucketManager()
		if err != nil {
			return err
		}

		if err := manager.DeletePolicy(cmd.Context(), args[0]); err != nil {
			return fmt.Errorf("❌ ポリシー削除でエラー: %w", err)
		}
		fmt.Printf("✅ バケット %s のポリシーを削除しました\n", args[0])
		return nil
	},
	SilenceUsage: true,
}

var s3CleanupCmd = &cobra.Command{
	Use:   "cleanup",
	Short: "キーワードに一致するS3バケットを中身ごと削除",
	Long: `指定したキーワード（またはワイルドカードパターン）に一致するバケットを検索し、
中身をすべて削除してからバケット本体を削除します。
!!! 注意 !!! このコマンドはリソースを完全に削除します。実行には十分注意してください。

例:
  ` + AppName + ` s3 cleanup -k test-
  ` + AppName + ` s3 cleanup -k "myapp-*"`,
	RunE: func(cmd *cobra.Command, args []string) error {
		manager, err := newBucketManager()
		if err != nil {
			return err
		}

		buckets, err := manager.BucketsByFilter(cmd.Context(), s3CleanupKeyword)
		if err != nil {
			return fmt.Errorf("❌ バケット検索でエラー: %w", err)
		}
		if len(buckets) == 0 {
			fmt.Printf("キーワード '%s' に一致するバケットが見つかりませんでした\n", s3CleanupKeyword)
			return nil
		}

		result := manager.CleanupBuckets(cmd.Context(), buckets)
		if len(result.Failed) > 0 {
			return fmt.Errorf("❌ %d個中%d個の%sの削除に失敗しました",
				result.TotalCount(), len(result.Failed), result.ResourceType)
		}
		fmt.Println("✅ クリーンアップ完了！")
		return nil
	},
	SilenceUsage: true,
}

func init() {
	RootCmd.AddCommand(S3Cmd)
	S3Cmd.AddCommand(s3CreateCmd)
	S3Cmd.AddCommand(s3LsCmd)
	S3Cmd.AddCommand(s3ExistsCmd)
	S3Cmd.AddCommand(s3RmCmd)
	S3Cmd.AddCommand(s3AclCmd)
	S3Cmd.AddCommand(S3PolicyCmd)
	S3Cmd.AddCommand(s3CleanupCmd)
	S3PolicyCmd.AddCommand(s3PolicyPutCmd)
	S3PolicyCmd.AddCommand(s3PolicyGetCmd)
	S3PolicyCmd.AddCommand(s3PolicyDeleteCmd)

	// s3 create flags
	s3CreateCmd.Flags().StringVarP(&s3BucketPrefix, "prefix", "p", "sth", "生成するバケット名のプレフィックス")
	s3CreateCmd.Flags().StringVar(&s3BucketName, "name", "", "バケット名（指定時はプレフィックスを無視）")

	// s3 policy put flags
	s3PolicyPutCmd.Flags().StringVarP(&s3PolicyFile, "file", "f", "", "ポリシードキュメント（JSON）のパス（必須）")
	_ = s3PolicyPutCmd.MarkFlagRequired("file")

	// s3 cleanup flags
	s3CleanupCmd.Flags().StringVarP(&s3CleanupKeyword, "keyword", "k", "", "削除対象を絞り込むための検索キーワード（必須）")
	_ = s3CleanupCmd.MarkFlagRequired("keyword")
}
