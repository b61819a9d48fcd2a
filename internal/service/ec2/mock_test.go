package ec2

import (
	"context"

	awsec2 "github.com/aws/aws-sdk-go-v2/service/ec2"
)

type mockEc2API struct {
	deleteKeyPairFunc               func(ctx context.Context, params *awsec2.DeleteKeyPairInput, optFns ...func(*awsec2.Options)) (*awsec2.DeleteKeyPairOutput, error)
	createKeyPairFunc               func(ctx context.Context, params *awsec2.CreateKeyPairInput, optFns ...func(*awsec2.Options)) (*awsec2.CreateKeyPairOutput, error)
	runInstancesFunc                func(ctx context.Context, params *awsec2.RunInstancesInput, optFns ...func(*awsec2.Options)) (*awsec2.RunInstancesOutput, error)
	describeInstancesFunc           func(ctx context.Context, params *awsec2.DescribeInstancesInput, optFns ...func(*awsec2.Options)) (*awsec2.DescribeInstancesOutput, error)
	associateIamInstanceProfileFunc func(ctx context.Context, params *awsec2.AssociateIamInstanceProfileInput, optFns ...func(*awsec2.Options)) (*awsec2.AssociateIamInstanceProfileOutput, error)
}

func (m *mockEc2API) DeleteKeyPair(ctx context.Context, params *awsec2.DeleteKeyPairInput, optFns ...func(*awsec2.Options)) (*awsec2.DeleteKeyPairOutput, error) {
	return m.deleteKeyPairFunc(ctx, params, optFns...)
}

func (m *mockEc2API) CreateKeyPair(ctx context.Context, params *awsec2.CreateKeyPairInput, optFns ...func(*awsec2.Options)) (*awsec2.CreateKeyPairOutput, error) {
	return m.createKeyPairFunc(ctx, params, optFns...)
}

func (m *mockEc2API) RunInstances(ctx context.Context, params *awsec2.RunInstancesInput, optFns ...func(*awsec2.Options)) (*awsec2.RunInstancesOutput, error) {
	return m.runInstancesFunc(ctx, params, optFns...)
}

func (m *mockEc2API) DescribeInstances(ctx context.Context, params *awsec2.DescribeInstancesInput, optFns ...func(*awsec2.Options)) (*awsec2.DescribeInstancesOutput, error) {
	return m.describeInstancesFunc(ctx, params, optFns...)
}

func (m *mockEc2API) AssociateIamInstanceProfile(ctx context.Context, params *awsec2.AssociateIamInstanceProfileInput, optFns ...func(*awsec2.Options)) (*awsec2.AssociateIamInstanceProfileOutput, error) {
	return m.associateIamInstanceProfileFunc(ctx, params, optFns...)
}
