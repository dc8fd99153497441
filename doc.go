/*
Package ftpx provides transfer helpers on top of an FTP (or SFTP) client: buffered single-file download and upload,
recursive directory download and upload, and deletion of everything below a remote directory.

The helpers never speak a wire protocol themselves.  They drive a types.Client, which is implemented for FTP by
backend/ftp (github.com/jlaffaye/ftp) and for SFTP by backend/sftp (github.com/pkg/sftp).  Tests use mocks.Client.

# Usage

	client, err := ftp.NewClient("bob@ftp.example.com:21", ftp.WithOptions(ftp.Options{Password: "s3cr3t"}))
	if err != nil {
		#handle error
	}
	defer client.Close()

	t := ftpx.NewTransfer(client, ftpx.WithLogger(logger))

	// mirror a remote tree locally
	err = t.DownloadDirectory("/outgoing/reports", "/tmp/reports")

	// upload /tmp/build as /incoming/build (createFolderOnServer == true)
	err = t.UploadDirectory("/incoming", "/tmp/build", true)

	// remove everything below /incoming/old, keeping /incoming/old itself
	err = t.DeleteSubDirectory("/incoming/old")

# Buffers

Every copy loop reads in BufferSize (2 KiB) chunks.  Uploads write each chunk to the remote stream as soon as it is
read.  Downloads collect chunks in a MaxCacheSize (2 MiB) in-memory cache and write the cache to the local file each
time the next chunk would not fit and once more at end of stream, so a file of L bytes is written with
ceil(L / MaxCacheSize) writes.

# Errors

Argument and precondition failures are reported before any I/O and match ErrInvalidArgument, ErrInvalidFile,
ErrRemoteNotExist or ErrLocalNotExist with errors.Is.  I/O failures are wrapped with context but keep the original
error reachable.  Nothing is retried and partial transfers are left in place.

A Transfer is not safe for concurrent use; FTP allows a single transfer per control connection.
*/
package ftpx
