package main

import (
	"context"

	admin "google.golang.org/api/admin/directory/v1"
)

// directoryAPI is what the handlers actually depend on. Lookups return nil
// for anything that went wrong, not-found or otherwise; callers cannot tell
// the two apart at this layer. Mutators make exactly one call and hand the
// error back untouched.
type directoryAPI interface {
	GetUser(ctx context.Context, userEmail string) *admin.User
	CreateUser(ctx context.Context, userEmail, password, firstName, lastName, orgUnitPath string) error
	SuspendUser(ctx context.Context, userEmail string) error
	DeleteUser(ctx context.Context, userEmail string) error
	GetGroup(ctx context.Context, groupEmail string) *admin.Group
	ListGroupMembers(ctx context.Context, groupEmail string) ([]string, error)
	AddToGroup(ctx context.Context, userEmail, groupEmail string) error
	RemoveFromGroup(ctx context.Context, userEmail, groupEmail string) error
}

type directoryClient struct {
	svc *admin.Service
}

func (d *directoryClient) GetUser(ctx context.Context, userEmail string) *admin.User {
	user, err := d.svc.Users.Get(userEmail).Context(ctx).Do()
	if err != nil {
		return nil
	}
	return user
}

func (d *directoryClient) CreateUser(ctx context.Context, userEmail, password, firstName, lastName, orgUnitPath string) error {
	body := &admin.User{
		PrimaryEmail:              userEmail,
		Password:                  password,
		ChangePasswordAtNextLogin: true,
		Name: &admin.UserName{
			GivenName:  firstName,
			FamilyName: lastName,
		},
		OrgUnitPath: orgUnitPath,
	}
	_, err := d.svc.Users.Insert(body).Context(ctx).Do()
	return err
}

func (d *directoryClient) SuspendUser(ctx context.Context, userEmail string) error {
	body := &admin.User{
		Suspended:       true,
		ForceSendFields: []string{"Suspended"},
	}
	_, err := d.svc.Users.Update(userEmail, body).Context(ctx).Do()
	return err
}

func (d *directoryClient) DeleteUser(ctx context.Context, userEmail string) error {
	return d.svc.Users.Delete(userEmail).Context(ctx).Do()
}

func (d *directoryClient) GetGroup(ctx context.Context, groupEmail string) *admin.Group {
	group, err := d.svc.Groups.Get(groupEmail).Context(ctx).Do()
	if err != nil {
		return nil
	}
	return group
}

// ListGroupMembers follows continuation tokens until the API is done and
// returns every member email in listing order. Fine for the small groups
// this runs against.
func (d *directoryClient) ListGroupMembers(ctx context.Context, groupEmail string) ([]string, error) {
	var emails []string

	pageToken := ""
	for {
		call := d.svc.Members.List(groupEmail).Context(ctx)
		if pageToken != "" {
			call = call.PageToken(pageToken)
		}
		page, err := call.Do()
		if err != nil {
			return nil, err
		}
		for _, member := range page.Members {
			emails = append(emails, member.Email)
		}
		if page.NextPageToken == "" {
			break
		}
		pageToken = page.NextPageToken
	}

	return emails, nil
}

func (d *directoryClient) AddToGroup(ctx context.Context, userEmail, groupEmail string) error {
	member := &admin.Member{
		Email: userEmail,
		Role:  "MEMBER",
	}
	_, err := d.svc.Members.Insert(groupEmail, member).Context(ctx).Do()
	return err
}

func (d *directoryClient) RemoveFromGroup(ctx context.Context, userEmail, groupEmail string) error {
	return d.svc.Members.Delete(groupEmail, userEmail).Context(ctx).Do()
}

func isUserInGroup(ctx context.Context, dir directoryAPI, userEmail, groupEmail string) (bool, error) {
	members, err := dir.ListGroupMembers(ctx, groupEmail)
	if err != nil {
		return false, err
	}
	for _, member := range members {
		if member == userEmail {
			return true, nil
		}
	}
	return false, nil
}
