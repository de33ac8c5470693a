package main

import (
	"context"

	licensing "google.golang.org/api/licensing/v1"
)

type licensingAPI interface {
	AssignLicense(ctx context.Context, productID, skuID, userEmail string) error
	UnassignLicense(ctx context.Context, productID, skuID, userEmail string) error
}

type licensingClient struct {
	svc *licensing.Service
}

func (l *licensingClient) AssignLicense(ctx context.Context, productID, skuID, userEmail string) error {
	body := &licensing.LicenseAssignmentInsert{UserId: userEmail}
	_, err := l.svc.LicenseAssignments.Insert(productID, skuID, body).Context(ctx).Do()
	return err
}

func (l *licensingClient) UnassignLicense(ctx context.Context, productID, skuID, userEmail string) error {
	_, err := l.svc.LicenseAssignments.Delete(productID, skuID, userEmail).Context(ctx).Do()
	return err
}
