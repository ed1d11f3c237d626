package notifier

// maxAttachmentSize is Discord's upload limit for webhooks without Nitro.
const maxAttachmentSize = 8 * 1024 * 1024
