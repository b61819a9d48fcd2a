package iam

import (
	"context"

	awsiam "github.com/aws/aws-sdk-go-v2/service/iam"
)

type mockIamAPI struct {
	createRoleFunc                    func(ctx context.Context, params *awsiam.CreateRoleInput, optFns ...func(*awsiam.Options)) (*awsiam.CreateRoleOutput, error)
	deleteRoleFunc                    func(ctx context.Context, params *awsiam.DeleteRoleInput, optFns ...func(*awsiam.Options)) (*awsiam.DeleteRoleOutput, error)
	createPolicyFunc                  func(ctx context.Context, params *awsiam.CreatePolicyInput, optFns ...func(*awsiam.Options)) (*awsiam.CreatePolicyOutput, error)
	attachRolePolicyFunc              func(ctx context.Context, params *awsiam.AttachRolePolicyInput, optFns ...func(*awsiam.Options)) (*awsiam.AttachRolePolicyOutput, error)
	detachRolePolicyFunc              func(ctx context.Context, params *awsiam.DetachRolePolicyInput, optFns ...func(*awsiam.Options)) (*awsiam.DetachRolePolicyOutput, error)
	listAttachedRolePoliciesFunc      func(ctx context.Context, params *awsiam.ListAttachedRolePoliciesInput, optFns ...func(*awsiam.Options)) (*awsiam.ListAttachedRolePoliciesOutput, error)
	listRolePoliciesFunc              func(ctx context.Context, params *awsiam.ListRolePoliciesInput, optFns ...func(*awsiam.Options)) (*awsiam.ListRolePoliciesOutput, error)
	deleteRolePolicyFunc              func(ctx context.Context, params *awsiam.DeleteRolePolicyInput, optFns ...func(*awsiam.Options)) (*awsiam.DeleteRolePolicyOutput, error)
	listInstanceProfilesForRoleFunc   func(ctx context.Context, params *awsiam.ListInstanceProfilesForRoleInput, optFns ...func(*awsiam.Options)) (*awsiam.ListInstanceProfilesForRoleOutput, error)
	removeRoleFromInstanceProfileFunc func(ctx context.Context, params *awsiam.RemoveRoleFromInstanceProfileInput, optFns ...func(*awsiam.Options)) (*awsiam.RemoveRoleFromInstanceProfileOutput, error)
	createInstanceProfileFunc         func(ctx context.Context, params *awsiam.CreateInstanceProfileInput, optFns ...func(*awsiam.Options)) (*awsiam.CreateInstanceProfileOutput, error)
	getInstanceProfileFunc            func(ctx context.Context, params *awsiam.GetInstanceProfileInput, optFns ...func(*awsiam.Options)) (*awsiam.GetInstanceProfileOutput, error)
	addRoleToInstanceProfileFunc      func(ctx context.Context, params *awsiam.AddRoleToInstanceProfileInput, optFns ...func(*awsiam.Options)) (*awsiam.AddRoleToInstanceProfileOutput, error)
}

func (m *mockIamAPI) CreateRole(ctx context.Context, params *awsiam.CreateRoleInput, optFns ...func(*awsiam.Options)) (*awsiam.CreateRoleOutput, error) {
	return m.createRoleFunc(ctx, params, optFns...)
}

func (m *mockIamAPI) DeleteRole(ctx context.Context, params *awsiam.DeleteRoleInput, optFns ...func(*awsiam.Options)) (*awsiam.DeleteRoleOutput, error) {
	return m.deleteRoleFunc(ctx, params, optFns...)
}

func (m *mockIamAPI) CreatePolicy(ctx context.Context, params *awsiam.CreatePolicyInput, optFns ...func(*awsiam.Options)) (*awsiam.CreatePolicyOutput, error) {
	return m.createPolicyFunc(ctx, params, optFns...)
}

func (m *mockIamAPI) AttachRolePolicy(ctx context.Context, params *awsiam.AttachRolePolicyInput, optFns ...func(*awsiam.Options)) (*awsiam.AttachRolePolicyOutput, error) {
	return m.attachRolePolicyFunc(ctx, params, optFns...)
}

func (m *mockIamAPI) DetachRolePolicy(ctx context.Context, params *awsiam.DetachRolePolicyInput, optFns ...func(*awsiam.Options)) (*awsiam.DetachRolePolicyOutput, error) {
	return m.detachRolePolicyFunc(ctx, params, optFns...)
}

func (m *mockIamAPI) ListAttachedRolePolicies(ctx context.Context, params *awsiam.ListAttachedRolePoliciesInput, optFns ...func(*awsiam.Options)) (*awsiam.ListAttachedRolePoliciesOutput, error) {
	return m.listAttachedRolePoliciesFunc(ctx, params, optFns...)
}

func (m *mockIamAPI) ListRolePolicies(ctx context.Context, params *awsiam.ListRolePoliciesInput, optFns ...func(*awsiam.Options)) (*awsiam.ListRolePoliciesOutput, error) {
	return m.listRolePoliciesFunc(ctx, params, optFns...)
}

func (m *mockIamAPI) DeleteRolePolicy(ctx context.Context, params *awsiam.DeleteRolePolicyInput, optFns ...func(*awsiam.Options)) (*awsiam.DeleteRolePolicyOutput, error) {
	return m.deleteRolePolicyFunc(ctx, params, optFns...)
}

func (m *mockIamAPI) ListInstanceProfilesForRole(ctx context.Context, params *awsiam.ListInstanceProfilesForRoleInput, optFns ...func(*awsiam.Options)) (*awsiam.ListInstanceProfilesForRoleOutput, error) {
	return m.listInstanceProfilesForRoleFunc(ctx, params, optFns...)
}

func (m *mockIamAPI) RemoveRoleFromInstanceProfile(ctx context.Context, params *awsiam.RemoveRoleFromInstanceProfileInput, optFns ...func(*awsiam.Options)) (*awsiam.RemoveRoleFromInstanceProfileOutput, error) {
	return m.removeRoleFromInstanceProfileFunc(ctx, params, optFns...)
}

func (m *mockIamAPI) CreateInstanceProfile(ctx context.Context, params *awsiam.CreateInstanceProfileInput, optFns ...func(*awsiam.Options)) (*awsiam.CreateInstanceProfileOutput, error) {
	return m.createInstanceProfileFunc(ctx, params, optFns...)
}

func (m *mockIamAPI) GetInstanceProfile(ctx context.Context, params *awsiam.GetInstanceProfileInput, optFns ...func(*awsiam.Options)) (*awsiam.GetInstanceProfileOutput, error) {
	return m.getInstanceProfileFunc(ctx, params, optFns...)
}

func (m *mockIamAPI) AddRoleToInstanceProfile(ctx context.Context, params *awsiam.AddRoleToInstanceProfileInput, optFns ...func(*awsiam.Options)) (*awsiam.AddRoleToInstanceProfileOutput, error) {
	return m.addRoleToInstanceProfileFunc(ctx, params, optFns...)
}
