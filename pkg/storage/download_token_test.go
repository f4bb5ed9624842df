package storage

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestDownloadSignerSignAndVerify(t *testing.T) {
	signer := NewDownloadSigner("test-secret", time.Hour)

	token, expiresAt, err := signer.Sign(DownloadClaims{
		JobID:  "job-1",
		Format: "csv",
		Path:   "schedules/schedule.csv",
	})
	require.NoError(t, err)
	require.True(t, expiresAt.After(time.Now()))

	claims, err := signer.Verify(token)
	require.NoError(t, err)
	require.Equal(t, "job-1", claims.JobID)
	require.Equal(t, "csv", claims.Format)
	require.Equal(t, "schedules/schedule.csv", claims.Path)
	require.Equal(t, expiresAt.Unix(), claims.ExpiresAt.Unix())
}

func TestDownloadSignerRejectsExpiredToken(t *testing.T) {
	signer := NewDownloadSigner("test-secret", time.Nanosecond)

	token, _, err := signer.Sign(DownloadClaims{JobID: "job-1", Format: "pdf", Path: "schedules/schedule.pdf"})
	require.NoError(t, err)

	time.Sleep(10 * time.Millisecond)
	_, err = signer.Verify(token)
	require.ErrorContains(t, err, "expired")
}

func TestDownloadSignerRejectsTampering(t *testing.T) {
	signer := NewDownloadSigner("test-secret", time.Hour)

	token, _, err := signer.Sign(DownloadClaims{JobID: "job-1", Format: "csv", Path: "schedules/schedule.csv"})
	require.NoError(t, err)

	_, err = signer.Verify("x" + token)
	require.Error(t, err)

	other := NewDownloadSigner("different-secret", time.Hour)
	_, err = other.Verify(token)
	require.ErrorContains(t, err, "signature")
}

func TestDownloadSignerRequiresJobAndPath(t *testing.T) {
	signer := NewDownloadSigner("test-secret", time.Hour)

	_, _, err := signer.Sign(DownloadClaims{Format: "csv"})
	require.Error(t, err)
}
