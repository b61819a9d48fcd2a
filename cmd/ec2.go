package cmd

import (
	"fmt"
	"os"

	"awssetup/internal/service/common"
	ec2svc "awssetup/internal/service/ec2"

	"github.com/spf13/cobra"
)

var (
	// launch flags
	ec2KeyFile        string
	ec2KeyPairName    string
	ec2RoleArn        string
	ec2RoleName       string
	ec2UserDataFile   string
	ec2SecurityGroups []string
	ec2WaitSeconds    int
	// associate flags
	ec2InstanceId  string
	ec2ProfileName string
	ec2ProfileArn  string
)

// Ec2Cmd represents the ec2 command
var Ec2Cmd = &cobra.Command{
	Use:   "ec2",
	Short: "EC2リソース操作コマンド",
	Long:  `EC2インスタンスの起動・一覧表示・インスタンスプロファイル関連付けを行うコマンド群です。`,
}

var ec2LaunchCmd = &cobra.Command{
	Use:   "launch",
	Short: "キーペアを作り直してEC2インスタンスを起動",
	Long: `同名の既存キーペアを削除して作り直し、秘密鍵をファイルに保存してから
インスタンスを1台起動します。秘密鍵は作成時にしか取得できないため、
既存のキーファイルは上書きされます。

例:
  ` + AppName + ` ec2 launch -k ./svc.pem -K svc-key -g sg-0123456789 -u bootstrap.sh
  ` + AppName + ` ec2 launch -k ./svc.pem -K svc-key -g sg-0123456789 --wait 300`,
	RunE: func(cmd *cobra.Command, args []string) error {
		var startupScript string
		if ec2UserDataFile != "" {
			content, err := os.ReadFile(ec2UserDataFile)
			if err != nil {
				return fmt.Errorf("❌ 起動スクリプトの読み込みに失敗: %w", err)
			}
			startupScript = string(content)
		}

		clients, err := newAwsClients()
		if err != nil {
			return err
		}
		manager := ec2svc.NewManager(clients.Ec2(), clients.Region(), logger)

		instanceId, err := manager.CreateInstance(cmd.Context(), ec2svc.CreateInstanceOptions{
			KeyFile:        ec2KeyFile,
			KeyPairName:    ec2KeyPairName,
			RoleArn:        ec2RoleArn,
			RoleName:       ec2RoleName,
			StartupScript:  startupScript,
			SecurityGroups: common.RemoveDuplicates(ec2SecurityGroups),
		})
		if err != nil {
			return fmt.Errorf("❌ インスタンス起動でエラー: %w", err)
		}
		fmt.Printf("✅ EC2インスタンスを起動しました: %s\n", instanceId)

		if ec2WaitSeconds > 0 {
			if err := manager.WaitUntilRunning(cmd.Context(), instanceId, ec2WaitSeconds); err != nil {
				return fmt.Errorf("❌ 起動待機でエラー: %w", err)
			}
		}
		return nil
	},
	SilenceUsage: true,
}

var ec2AssociateCmd = &cobra.Command{
	Use:   "associate",
	Short: "インスタンスプロファイルをインスタンスに関連付け",
	Long: `インスタンスプロファイルをEC2インスタンスに関連付けます。

例:
  ` + AppName + ` ec2 associate -i i-0123456789abcdef0 -n svc-profile -a arn:aws:iam::123456789012:instance-profile/setup/svc-profile`,
	RunE: func(cmd *cobra.Command, args []string) error {
		clients, err := newAwsClients()
		if err != nil {
			return err
		}
		manager := ec2svc.NewManager(clients.Ec2(), clients.Region(), logger)

		associationId, err := manager.AssociateProfile(cmd.Context(), ec2ProfileName, ec2ProfileArn, ec2InstanceId)
		if err != nil {
			return fmt.Errorf("❌ プロファイル関連付けでエラー: %w", err)
		}
		fmt.Printf("✅ インスタンスプロファイルを関連付けました: %s\n", associationId)
		return nil
	},
	SilenceUsage: true,
}

var ec2LsCmd = &cobra.Command{
	Use:   "ls",
	Short: "EC2インスタンス一覧を表示",
	RunE: func(cmd *cobra.Command, args []string) error {
		clients, err := newAwsClients()
		if err != nil {
			return err
		}
		manager := ec2svc.NewManager(clients.Ec2(), clients.Region(), logger)

		instances, err := manager.ListInstances(cmd.Context())
		if err != nil {
			return common.FormatListError("EC2インスタンス", err)
		}
		if len(instances) == 0 {
			fmt.Println("EC2インスタンスが見つかりませんでした")
			return nil
		}

		columns := []common.TableColumn{
			{Header: "インスタンスID"},
			{Header: "インスタンス名"},
			{Header: "状態"},
		}
		data := make([][]string, len(instances))
		for i, instance := range instances {
			data[i] = []string{instance.InstanceId, instance.InstanceName, instance.State}
		}
		common.PrintTable("EC2インスタンス一覧", columns, data)
		return nil
	},
	SilenceUsage: true,
}

func init() {
	RootCmd.AddCommand(Ec2Cmd)
	Ec2Cmd.AddCommand(ec2LaunchCmd)
	Ec2Cmd.AddCommand(ec2AssociateCmd)
	Ec2Cmd.AddCommand(ec2LsCmd)

	// ec2 launch flags
	ec2LaunchCmd.Flags().StringVarP(&ec2KeyFile, "key-file", "k", "", "秘密鍵の保存先パス（必須）")
	_ = ec2LaunchCmd.MarkFlagRequired("key-file")
	ec2LaunchCmd.Flags().StringVarP(&ec2KeyPairName, "key-name", "K", "", "キーペア名（必須）")
	_ = ec2LaunchCmd.MarkFlagRequired("key-name")
	ec2LaunchCmd.Flags().StringVar(&ec2RoleArn, "role-arn", "", "割り当て予定のロールARN")
	ec2LaunchCmd.Flags().StringVar(&ec2RoleName, "role-name", "", "割り当て予定のロール名")
	ec2LaunchCmd.Flags().StringVarP(&ec2UserDataFile, "user-data", "u", "", "起動スクリプトファイルのパス")
	ec2LaunchCmd.Flags().StringSliceVarP(&ec2SecurityGroups, "security-group", "g", []string{}, "セキュリティグループID（複数指定可）")
	ec2LaunchCmd.Flags().IntVar(&ec2WaitSeconds, "wait", 0, "runningになるまで待機する秒数（0=待機しない）")

	// ec2 associate flags
	ec2AssociateCmd.Flags().StringVarP(&ec2InstanceId, "instance-id", "i", "", "関連付け先のインスタンスID（必須）")
	_ = ec2AssociateCmd.MarkFlagRequired("instance-id")
	ec2AssociateCmd.Flags().StringVarP(&ec2ProfileName, "name", "n", "", "プロファイル名（必須）")
	_ = ec2AssociateCmd.MarkFlagRequired("name")
	ec2AssociateCmd.Flags().StringVarP(&ec2ProfileArn, "arn", "a", "", "プロファイルARN（必須）")
	_ = ec2AssociateCmd.MarkFlagRequired("arn")
}
