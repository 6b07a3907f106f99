package service

import (
	"crypto/tls"
	"time"

	"pipeline-crm-backend/internal/config"
	apperrors "pipeline-crm-backend/internal/errors"

	"github.com/go-ldap/ldap/v3"
)

// DirectoryUser represents a subset of LDAP attributes for an operator
// found in the corporate directory
type DirectoryUser struct {
	DN          string `json:"dn"`
	DisplayName string `json:"displayName"`
	Mobile      string `json:"mobile"`
	Mail        string `json:"mail"`
	GivenName   string `json:"givenName"`
	SN          string `json:"sn"`
}

// DirectoryService looks up operators in the corporate LDAP directory,
// used by admins when provisioning profiles
type DirectoryService struct {
	cfg *config.Config
}

// Ensure DirectoryService implements DirectoryServiceInterface
var _ DirectoryServiceInterface = (*DirectoryService)(nil)

// NewDirectoryService creates a new DirectoryService
func NewDirectoryService(cfg *config.Config) *DirectoryService {
	return &DirectoryService{cfg: cfg}
}

// IsConfigured reports whether an LDAP host is configured
func (s *DirectoryService) IsConfigured() bool {
	return s.cfg.LDAPHost != ""
}

// SearchByName searches directory users by common name (prefix match)
func (s *DirectoryService) SearchByName(name string) ([]DirectoryUser, error) {
	if !s.IsConfigured() {
		return nil, apperrors.ErrDirectoryProviderNotConfigured
	}

	addr := s.cfg.LDAPHost + ":" + s.cfg.LDAPPort

	l, err := ldap.DialTLS("tcp", addr, &tls.Config{InsecureSkipVerify: s.cfg.LDAPInsecureSkipVerify})
	if err != nil {
		return nil, err
	}
	defer l.Close()

	if s.cfg.LDAPTimeoutSec > 0 {
		l.SetTimeout(time.Duration(s.cfg.LDAPTimeoutSec) * time.Second)
	}

	if err := l.Bind(s.cfg.LDAPBindDN, s.cfg.LDAPBindPW); err != nil {
		return nil, err
	}

	filter := "(cn=" + ldap.EscapeFilter(name) + "*)"
	attrs := []string{"displayName", "mobile", "sn", "mail", "givenName"}

	req := ldap.NewSearchRequest(
		s.cfg.LDAPBaseDN,
		ldap.ScopeWholeSubtree,
		ldap.NeverDerefAliases,
		0,
		s.cfg.LDAPTimeoutSec,
		false,
		filter,
		attrs,
		nil,
	)

	res, err := l.Search(req)
	if err != nil {
		return nil, err
	}

	out := make([]DirectoryUser, 0, len(res.Entries))
	for _, e := range res.Entries {
		out = append(out, DirectoryUser{
			DN:          e.DN,
			DisplayName: e.GetAttributeValue("displayName"),
			Mobile:      e.GetAttributeValue("mobile"),
			Mail:        e.GetAttributeValue("mail"),
			GivenName:   e.GetAttributeValue("givenName"),
			SN:          e.GetAttributeValue("sn"),
		})
	}

	return out, nil
}
